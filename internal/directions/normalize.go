package directions

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`<.*?>`)
	// The API sometimes concatenates sentences without punctuation when its
	// markup is stripped ("Turn leftDestination will be on the right"). The
	// lowercase-to-uppercase break repairs that, at the cost of misfiring on
	// legitimate camel-case proper nouns.
	runOnPattern = regexp.MustCompile(`([a-z])([A-Z])`)
)

// normalizeInstruction turns an html_instructions value into plain text.
func normalizeInstruction(instruction string) string {
	text := tagPattern.ReplaceAllString(instruction, "")
	text = html.UnescapeString(text)
	text = runOnPattern.ReplaceAllString(text, "$1. $2")
	return strings.TrimSpace(text)
}

// renderStep formats one numbered instruction line. Transit steps drop the
// generic instruction and name the vehicle, line, and stops instead.
func renderStep(num int, s step) string {
	if s.TransitDetails != nil {
		td := s.TransitDetails
		return fmt.Sprintf("%d. Take %s %s from %s to %s",
			num, vehicleName(td.Line.Vehicle), lineName(td.Line),
			td.DepartureStop.Name, td.ArrivalStop.Name)
	}
	return fmt.Sprintf("%d. %s (%s)",
		num, normalizeInstruction(s.HTMLInstructions), s.Distance.Text)
}

func lineName(l transitLine) string {
	switch {
	case l.ShortName != "":
		return l.ShortName
	case l.Name != "":
		return l.Name
	default:
		return "Unknown line"
	}
}

func vehicleName(v vehicle) string {
	switch {
	case v.Name != "":
		return v.Name
	case v.Type != "":
		return strings.Title(strings.ToLower(strings.ReplaceAll(v.Type, "_", " ")))
	default:
		return "Transit"
	}
}
