package observability

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const logMirrorScope = "league-dashboard/internal/platform/logging"

// Health checks and scrapes would drown the exported request log.
var quietRequestPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

type logMirror struct {
	logger otellog.Logger
}

func newUptraceLogMirror(serviceVersion string) logging.MirrorFunc {
	m := logMirror{
		logger: otelglobal.Logger(logMirrorScope, otellog.WithInstrumentationVersion(serviceVersion)),
	}
	return m.emit
}

func (m logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if isQuietRequestLog(msg, args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	severity := severityFor(level)
	if !m.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	var record otellog.Record
	now := time.Now().UTC()
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(severity)
	record.SetSeverityText(strings.ToUpper(level.String()))
	record.SetEventName(msg)
	record.SetBody(otellog.StringValue(msg))
	if attrs := logAttributes(args); len(attrs) > 0 {
		record.AddAttributes(attrs...)
	}

	m.logger.Emit(ctx, record)
}

func isQuietRequestLog(msg string, args []any) bool {
	if msg != "http request" {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, _ := args[i].(string); key == "path" {
			path, _ := args[i+1].(string)
			_, quiet := quietRequestPaths[path]
			return quiet
		}
	}
	return false
}

// logAttributes pairs args the same way the zap sugar API does. A dangling key
// becomes an empty attribute.
func logAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	out := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if strings.TrimSpace(key) == "" {
			key = fmt.Sprintf("arg_%d", i/2)
		}
		if i+1 == len(args) {
			out = append(out, otellog.Empty(key))
			continue
		}
		out = append(out, otellog.KeyValue{Key: key, Value: logValue(args[i+1])})
	}
	return out
}

func severityFor(level zapcore.Level) otellog.Severity {
	switch level {
	case zapcore.DebugLevel:
		return otellog.SeverityDebug
	case zapcore.InfoLevel:
		return otellog.SeverityInfo
	case zapcore.WarnLevel:
		return otellog.SeverityWarn
	case zapcore.ErrorLevel:
		return otellog.SeverityError
	default:
		if level < zapcore.DebugLevel {
			return otellog.SeverityTrace
		}
		return otellog.SeverityFatal
	}
}

// logValue keeps scalars typed. Skip tallies and other string-keyed maps stay
// structured; any other composite is exported as its JSON text.
func logValue(value any) otellog.Value {
	switch v := value.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int32:
		return otellog.Int64Value(int64(v))
	case int64:
		return otellog.Int64Value(v)
	case uint32:
		return otellog.Int64Value(int64(v))
	case float64:
		return otellog.Float64Value(v)
	case float32:
		return otellog.Float64Value(float64(v))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	case []string:
		items := make([]otellog.Value, len(v))
		for i, s := range v {
			items[i] = otellog.StringValue(s)
		}
		return otellog.SliceValue(items...)
	case map[string]int:
		return sortedMapValue(len(v), func(yield func(string, otellog.Value)) {
			for k, n := range v {
				yield(k, otellog.IntValue(n))
			}
		})
	case map[string]any:
		return sortedMapValue(len(v), func(yield func(string, otellog.Value)) {
			for k, item := range v {
				yield(k, logValue(item))
			}
		})
	}

	encoded, err := sonic.MarshalString(value)
	if err != nil {
		return otellog.StringValue(fmt.Sprint(value))
	}
	return otellog.StringValue(encoded)
}

func sortedMapValue(size int, each func(yield func(string, otellog.Value))) otellog.Value {
	kvs := make([]otellog.KeyValue, 0, size)
	each(func(k string, v otellog.Value) {
		kvs = append(kvs, otellog.KeyValue{Key: k, Value: v})
	})
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return otellog.MapValue(kvs...)
}
