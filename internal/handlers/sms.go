package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awolk/sms-directions/internal/sms"
)

// DirectionsPipeline is the request-to-reply pipeline consumed by the
// transport layer.
type DirectionsPipeline interface {
	Handle(ctx context.Context, text string) string
}

// SMSHandler serves the inbound SMS webhook.
type SMSHandler struct {
	pipeline DirectionsPipeline
	maxLen   int
	logger   *zap.Logger
}

func NewSMSHandler(pipeline DirectionsPipeline, maxLen int, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{
		pipeline: pipeline,
		maxLen:   maxLen,
		logger:   logger,
	}
}

// RegisterRoutes registers the webhook and service routes.
func (h *SMSHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/sms", h.HandleSMS)
	r.GET("/healthz", h.Health)
	r.GET("/", servePage(indexHTML))
	r.GET("/privacy", servePage(privacyHTML))
	r.GET("/terms", servePage(termsHTML))
}

// HandleSMS handles POST /sms. The reply is always a valid TwiML document,
// whatever happened inside the pipeline.
func (h *SMSHandler) HandleSMS(c *gin.Context) {
	body := strings.TrimSpace(c.PostForm("Body"))

	reply := h.pipeline.Handle(c.Request.Context(), body)
	chunks := sms.Split(reply, h.maxLen)

	xmlBody, err := sms.BuildReply(chunks)
	if err != nil {
		h.logger.Error("failed to build TwiML reply", zap.Error(err))
		c.Data(http.StatusOK, sms.ContentType, []byte("<Response></Response>"))
		return
	}

	h.logger.Info("reply sent", zap.Int("chunks", len(chunks)), zap.Int("bytes", len(reply)))
	c.Data(http.StatusOK, sms.ContentType, xmlBody)
}

// Health handles GET /healthz.
func (h *SMSHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func servePage(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	}
}
