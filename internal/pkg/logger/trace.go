package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 是 Context 和日志里统一使用的链路 Key，
// HTTP 请求由 TraceMiddleware 写入，定时任务自己生成 job- 前缀的值
const TraceIDKey = "trace_id"

// ContextHandler 包装器，把 ctx 里的 trace_id 附加到每条日志上
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
