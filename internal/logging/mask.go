package logging

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`(ghp_|gho_|github_pat_|ghs_|ghu_|glpat-|xox[abpr]-)\S+`)

var tokenPrefixes = []string{"ghp_", "gho_", "github_pat_", "ghs_", "ghu_", "glpat-", "xoxa-", "xoxb-", "xoxp-", "xoxr-"}

// MaskTokens는 명령 출력에 섞인 access token 패턴을 마스킹한다.
// 로그에 남기기 전 stdout/stderr에 적용한다.
func MaskTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		for _, prefix := range tokenPrefixes {
			if strings.HasPrefix(match, prefix) {
				return prefix + "****"
			}
		}
		return match
	})
}
