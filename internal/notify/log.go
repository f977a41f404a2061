// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package notify

import (
	"context"

	"go.uber.org/zap"

	"giftshop/internal/catalog"
)

// LogNotifier writes notifications to the structured log. It is the
// development default and never fails.
type LogNotifier struct {
	logger    *zap.Logger
	recipient string
}

// NewLog returns a LogNotifier. A nil logger discards everything.
func NewLog(logger *zap.Logger, recipient string) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger, recipient: recipient}
}

func (n *LogNotifier) Notify(_ context.Context, msg catalog.Notification) error {
	env := NewEnvelope(msg, n.recipient)
	n.logger.Info("notification",
		zap.String("id", env.ID),
		zap.String("event", env.Event),
		zap.String("to", env.To),
		zap.String("reply_to", env.ReplyTo),
		zap.String("subject", env.Subject),
		zap.String("body", env.Body),
	)
	return nil
}
