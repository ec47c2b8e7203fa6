package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/metrics"
)

// ErrDisabled 未启用 LLM 解读
var ErrDisabled = errors.ServiceUnavailable("INSIGHT_DISABLED", "insight is not enabled")

const (
	maxRetries = 3
	baseDelay  = 2 * time.Second
)

// Interpreter 调用大模型对当日象限分布做简要解读
type Interpreter struct {
	chatModel model.ChatModel
	modelName string
	limiter   *rate.Limiter
	timeout   time.Duration
	backoff   time.Duration
	log       *log.Helper
}

// NewInterpreter 根据配置创建解读器；未启用时返回 nil，调用方据此返回 ErrDisabled
func NewInterpreter(c *conf.Insight, logger log.Logger) (*Interpreter, error) {
	if c == nil || !c.Enabled {
		return nil, nil
	}

	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.ApiKey,
		Model:   c.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid insight timeout %q: %w", c.Timeout, err)
	}

	return NewInterpreterWithModel(chatModel, c.Model, rate.NewLimiter(rate.Limit(float64(c.Rpm)/60.0), int(c.Qps)), timeout, logger), nil
}

// NewInterpreterWithModel 使用给定的 ChatModel 创建解读器
func NewInterpreterWithModel(cm model.ChatModel, modelName string, limiter *rate.Limiter, timeout time.Duration, logger log.Logger) *Interpreter {
	return &Interpreter{
		chatModel: cm,
		modelName: modelName,
		limiter:   limiter,
		timeout:   timeout,
		backoff:   baseDelay,
		log:       log.NewHelper(logger),
	}
}

// Interpret 返回对快照的中文解读
func (in *Interpreter) Interpret(ctx context.Context, snap *biz.Snapshot) (string, error) {
	if in == nil {
		return "", ErrDisabled
	}
	if in.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.timeout)
		defer cancel()
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: "你是一名宏观策略分析师，回答使用简体中文纯文本。"},
		{Role: schema.User, Content: BuildPrompt(snap)},
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			delay := in.backoff * time.Duration(1<<(i-1))
			in.log.WithContext(ctx).Warnf("LLM 限流，%v 后重试 (%d/%d): %v", delay, i, maxRetries, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		if err := in.limiter.Wait(ctx); err != nil {
			return "", err
		}

		start := time.Now()
		resp, err := in.chatModel.Generate(ctx, messages)
		metrics.InsightRequestDuration.WithLabelValues(in.modelName).Observe(time.Since(start).Seconds())
		if err == nil {
			return strings.TrimSpace(resp.Content), nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}

// BuildPrompt 把每个类别的象限归属整理成提示词
func BuildPrompt(snap *biz.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "日期：%s，关注度阈值：%.2f\n", snap.Layout.Date, snap.Threshold)
	sb.WriteString("以下是各风险类别的情绪值、关注度与所属象限（按关注度降序）：\n")
	for _, row := range snap.Rows {
		fmt.Fprintf(&sb, "- %s：情绪值 %.3f，关注度 %.3f，%s\n", row.Category, row.Sentiment, row.Attention, row.QuadrantLabel())
	}
	sb.WriteString("\n象限分布：")
	parts := make([]string, 0, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		parts = append(parts, fmt.Sprintf("%s %d 个", q.Label(), snap.Counts[q]))
	}
	sb.WriteString(strings.Join(parts, "；"))
	sb.WriteString(`

请完成：
1. 用 2-3 句话概括当前宏观风险格局。
2. 指出最值得警惕的类别（优先考虑第Ⅱ、Ⅲ象限）并说明原因。
3. 指出可能被忽视的积极信号（第Ⅳ象限）。
总字数控制在 300 字以内。`)
	return sb.String()
}
