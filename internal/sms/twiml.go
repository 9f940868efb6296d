package sms

import (
	"encoding/xml"
	"fmt"
)

// ContentType is the media type Twilio expects for TwiML replies.
const ContentType = "application/xml"

// Reply is a TwiML response carrying one <Message> per chunk, in
// presentation order.
type Reply struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message"`
}

// BuildReply marshals chunks into a TwiML document. Marshalling handles the
// XML entity escaping of the message bodies.
func BuildReply(chunks []string) ([]byte, error) {
	body, err := xml.Marshal(Reply{Messages: chunks})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TwiML reply: %w", err)
	}
	return body, nil
}
