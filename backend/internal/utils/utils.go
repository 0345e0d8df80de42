package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/errors"
	"github.com/microcosm-cc/bluemonday"
)

// NewIdGenerator returns the production id generator: random UUIDs without dashes.
func NewIdGenerator() domain.IdGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

func checkLength(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidation(fmt.Sprintf("%s is too short", field))
	}
	if utf8.RuneCountInString(value) > max {
		return errors.NewValidation(fmt.Sprintf("%s is too long", field))
	}
	return nil
}

type ThreadValidator struct {
	maxTitleLen int
	maxBodyLen  int
}

func NewThreadValidator(cfg *config.Public) *ThreadValidator {
	return &ThreadValidator{maxTitleLen: cfg.MaxThreadTitleLen, maxBodyLen: cfg.MaxThreadBodyLen}
}

func (v *ThreadValidator) Title(title domain.ThreadTitle) error {
	return checkLength("Title", title, v.maxTitleLen)
}

func (v *ThreadValidator) Body(body domain.ThreadBody) error {
	return checkLength("Body", body, v.maxBodyLen)
}

type CommentValidator struct {
	maxContentLen int
}

func NewCommentValidator(cfg *config.Public) *CommentValidator {
	return &CommentValidator{maxContentLen: cfg.MaxCommentLen}
}

func (v *CommentValidator) Content(content domain.CommentContent) error {
	return checkLength("Content", content, v.maxContentLen)
}

// Sanitizer strips every HTML tag from user text. Special characters come out
// entity-escaped, so the result is safe to embed in HTML as is.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *Sanitizer) Sanitize(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}
