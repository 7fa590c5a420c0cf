package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI         LogComponent = "api"
	ComponentDB          LogComponent = "database"
	ComponentEnhancement LogComponent = "enhancement"
	ComponentInvoice     LogComponent = "invoice"
	ComponentLead        LogComponent = "lead"
	ComponentStorage     LogComponent = "storage"
	ComponentEmail       LogComponent = "email"
	ComponentMiddleware  LogComponent = "middleware"
	ComponentServer      LogComponent = "server"
	ComponentWorker      LogComponent = "worker"
)

// LogContext holds structured context information for logs
type LogContext struct {
	CorrelationID string
	SessionID     string
	InvoiceID     string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    L(),
		component: component,
		context:   LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.context.Fields[k] = v
	}
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

type correlationKey struct{}

// ContextWithCorrelationID stores a correlation ID on ctx
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, correlationID)
}

// CorrelationIDFromContext returns the correlation ID stored on ctx, if any
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// WithContext copies request scoped values from ctx into the log context
func (sl *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	id := CorrelationIDFromContext(ctx)
	if id == "" {
		return sl
	}
	return sl.WithCorrelationID(id)
}

// WithSessionID adds the authoring session ID to the log context
func (sl *StructuredLogger) WithSessionID(sessionID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.SessionID = sessionID
	return newLogger
}

// WithInvoiceID adds the invoice ID to the log context
func (sl *StructuredLogger) WithInvoiceID(invoiceID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.InvoiceID = invoiceID
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	ctx := sl.context
	ctx.Fields = newFields
	return &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context:   ctx,
	}
}

// buildFields creates zap fields from the log context
func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, 6+len(sl.context.Fields))

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.SessionID != "" {
		fields = append(fields, zap.String("session_id", sl.context.SessionID))
	}
	if sl.context.InvoiceID != "" {
		fields = append(fields, zap.String("invoice_id", sl.context.InvoiceID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation logs the start and end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)

	opLogger.Debug("Operation started")

	err := fn()
	finalLogger := opLogger.WithDuration(time.Since(start))

	if err != nil {
		finalLogger.Error("Operation failed", err)
	} else {
		finalLogger.Info("Operation completed")
	}

	return err
}

// LogEnhancementEvent records the outcome of a single line item enhancement.
func (sl *StructuredLogger) LogEnhancementEvent(section, itemID, outcome string, duration time.Duration) {
	sl.WithFields(map[string]interface{}{
		"section": section,
		"item_id": itemID,
		"outcome": outcome,
	}).WithDuration(duration).Info("Line item enhancement finished")
}

// LogLeadDispatch records a fire-and-forget CRM dispatch.
func (sl *StructuredLogger) LogLeadDispatch(source, channel string, err error) {
	l := sl.WithFields(map[string]interface{}{
		"lead_source":      source,
		"dispatch_channel": channel,
	})
	if err != nil {
		l.Error("Lead dispatch failed", err)
		return
	}
	l.Info("Lead dispatched")
}
