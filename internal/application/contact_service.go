package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/inputvalidator"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/logger"
)

// FormStatus 提交按鈕的狀態
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormSending
	FormSent
)

// Label 按鈕文字
func (s FormStatus) Label() string {
	switch s {
	case FormSending:
		return "Sending..."
	case FormSent:
		return "Sent! ✓"
	default:
		return "Send Message"
	}
}

// Submission 表單內容
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Receipt 模擬提交的回執
type Receipt struct {
	ID          string
	SubmittedAt time.Time
}

// ContactService 模擬聯繫表單提交：不發送任何網絡請求
//
// Idle -> Sending (send_delay) -> Sent (reset_delay) -> Idle
type ContactService struct {
	timer  effect.Timer
	now    func() time.Time
	cfg    config.ContactConfig
	logger *zap.Logger

	status  FormStatus
	last    Receipt
	onReset func()
}

func NewContactService(timer effect.Timer, now func() time.Time, cfg config.ContactConfig, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &ContactService{
		timer:  timer,
		now:    now,
		cfg:    cfg,
		logger: logger.Named("contact"),
	}
}

// OnReset 表單回到 Idle 時的回調，用於清空輸入框
func (s *ContactService) OnReset(fn func()) { s.onReset = fn }

// Status 當前狀態
func (s *ContactService) Status() FormStatus { return s.status }

// Busy 提交流程進行中，按鈕禁用
func (s *ContactService) Busy() bool { return s.status != FormIdle }

// Last 最近一次提交的回執
func (s *ContactService) Last() Receipt { return s.last }

// Submit 提交表單。流程進行中返回 ErrFormBusy，內容無效返回 FORM_INVALID
func (s *ContactService) Submit(sub Submission) (Receipt, error) {
	if s.Busy() {
		return Receipt{}, apperrors.ErrFormBusy
	}
	sub.Name = inputvalidator.SanitizeInput(sub.Name)
	sub.Email = inputvalidator.SanitizeInput(sub.Email)
	sub.Message = inputvalidator.SanitizeInput(sub.Message)
	if err := validateSubmission(sub); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{ID: uuid.NewString(), SubmittedAt: s.now()}
	s.last = receipt
	s.status = FormSending

	s.logger.Info("表單提交",
		zap.String("submission_id", receipt.ID),
		logger.SanitizedString("name", strings.TrimSpace(sub.Name)),
		logger.SanitizedEmail("email", strings.TrimSpace(sub.Email)),
		zap.Int("message_len", len([]rune(sub.Message))),
	)

	s.timer.Schedule(s.cfg.SendDelay, func() {
		s.status = FormSent
		s.logger.Debug("表單已發送", zap.String("submission_id", receipt.ID))

		s.timer.Schedule(s.cfg.ResetDelay, func() {
			s.status = FormIdle
			if s.onReset != nil {
				s.onReset()
			}
		})
	})

	return receipt, nil
}

func validateSubmission(sub Submission) error {
	checks := []error{
		inputvalidator.ValidateRequired(sub.Name, "name", "請填寫姓名"),
		inputvalidator.ValidateLength(sub.Name, inputvalidator.MaxNameLength, "name"),
		inputvalidator.ValidateEmail(sub.Email),
		inputvalidator.ValidateRequired(sub.Message, "message", "請填寫留言"),
		inputvalidator.ValidateLength(sub.Message, inputvalidator.MaxMessageLength, "message"),
	}
	for _, err := range checks {
		var ve *inputvalidator.ValidationError
		if errors.As(err, &ve) {
			return invalidForm(ve.Message)
		}
	}
	return nil
}

func invalidForm(message string) error {
	return apperrors.Wrap(apperrors.ErrFormInvalid, apperrors.CodeFormInvalid, message)
}
