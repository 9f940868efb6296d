package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/awolk/sms-directions/internal/config"
	"github.com/awolk/sms-directions/internal/handlers"
	"github.com/awolk/sms-directions/internal/sms"
)

// DirectionsRequest is a directions query arriving over NATS request/reply,
// used by backoffice services that bypass the SMS gateway.
type DirectionsRequest struct {
	Text string `json:"text"`
}

// DirectionsReply carries the reply body plus its SMS-sized chunks.
type DirectionsReply struct {
	Reply  string   `json:"reply"`
	Chunks []string `json:"chunks"`
}

// NATSTransport serves the pipeline on a NATS subject.
type NATSTransport struct {
	conn     *nats.Conn
	config   *config.Config
	pipeline handlers.DirectionsPipeline
	logger   *zap.Logger
}

func NewNATSTransport(cfg *config.Config, pipeline handlers.DirectionsPipeline, logger *zap.Logger) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", zap.String("url", cfg.NatsURL))

	return &NATSTransport{
		conn:     conn,
		config:   cfg,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}

func (nt *NATSTransport) Start() error {
	_, err := nt.conn.Subscribe(nt.config.NatsSubject, nt.handleRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsSubject, err)
	}

	nt.logger.Info("subscribed", zap.String("subject", nt.config.NatsSubject))
	return nil
}

func (nt *NATSTransport) handleRequest(msg *nats.Msg) {
	var request DirectionsRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		nt.logger.Warn("invalid request payload", zap.Error(err))
		nt.respond(msg, &DirectionsReply{Reply: "Error: invalid request format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.NatsTimeout)
	defer cancel()

	reply := nt.pipeline.Handle(ctx, request.Text)
	nt.respond(msg, &DirectionsReply{
		Reply:  reply,
		Chunks: sms.Split(reply, nt.config.SMSMaxLen),
	})
}

func (nt *NATSTransport) respond(msg *nats.Msg, reply *DirectionsReply) {
	data, err := json.Marshal(reply)
	if err != nil {
		nt.logger.Error("failed to marshal reply", zap.Error(err))
		return
	}
	if err := msg.Respond(data); err != nil {
		nt.logger.Error("failed to send reply", zap.Error(err))
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		nt.logger.Info("NATS connection closed")
	}
	return nil
}
