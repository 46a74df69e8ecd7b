package service

import (
	"strings"
	"unicode/utf8"

	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"github.com/samber/lo"
)

const (
	MaxTagsPerImage = 5
	maxTagLength    = 50
)

// NormalizeTags accepts repeated values as well as comma separated lists.
// Names are lower cased and de-duplicated in first-seen order.
func NormalizeTags(raw []string) ([]string, error) {
	tags := lo.FlatMap(raw, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})
	tags = lo.Map(tags, func(t string, _ int) string {
		return strings.ToLower(utils.SanitizeText(t))
	})
	tags = lo.Uniq(lo.Compact(tags))

	if len(tags) > MaxTagsPerImage {
		return nil, platformservice.NewValidationError("An image can have at most 5 tags")
	}
	if _, tooLong := lo.Find(tags, func(t string) bool { return utf8.RuneCountInString(t) > maxTagLength }); tooLong {
		return nil, platformservice.NewValidationError("Tag must not exceed 50 characters")
	}
	return tags, nil
}
