package service

import (
	"Circle/config"
	"Circle/pkg/log"
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const defaultModerationTimeout = 3 * time.Second

var _ IModerationService = (*ModerationService)(nil)

// IModerationService 内容审核，Classify 返回文本是否安全
type IModerationService interface {
	Classify(ctx context.Context, text string) bool
}

type ModerationService struct {
	conf   *config.Moderation
	client openai.Client
}

func NewModerationService(conf *config.Moderation) *ModerationService {
	opts := make([]option.RequestOption, 0, 2)
	if conf.ApiKey != "" {
		opts = append(opts, option.WithAPIKey(conf.ApiKey))
	}
	if conf.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.BaseURL))
	}
	return &ModerationService{
		conf:   conf,
		client: openai.NewClient(opts...),
	}
}

// Classify 调用外部审核接口。接口不可用时放行（fail-open），
// 审核只拦截明确标记为不安全的内容，不能成为写入路径的硬依赖。
func (s *ModerationService) Classify(ctx context.Context, text string) bool {
	if !s.conf.Enabled || text == "" {
		return true
	}

	timeout := defaultModerationTimeout
	if s.conf.Timeout > 0 {
		timeout = time.Duration(s.conf.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{
			OfString: openai.String(text),
		},
	}
	if s.conf.Model != "" {
		params.Model = openai.ModerationModel(s.conf.Model)
	}

	start := time.Now()
	resp, err := s.client.Moderations.New(ctx, params)
	if err != nil {
		log.L.Warn("moderation call failed, fail-open", zap.Error(err))
		return true
	}
	log.L.Info("moderation classified",
		zap.Duration("cost", time.Since(start)),
		zap.Int("results", len(resp.Results)))

	for _, r := range resp.Results {
		if r.Flagged {
			return false
		}
	}
	return true
}
