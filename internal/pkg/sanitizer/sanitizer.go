package sanitizer

import "strings"

// String 通用字符串脫敏 (保留首尾)，按 rune 截取以免切斷多字節字符
func String(s string, start, end int) string {
	r := []rune(s)
	if len(r) <= start+end {
		return "***"
	}
	return string(r[:start]) + "***" + string(r[len(r)-end:])
}

// Email 郵箱脫敏，僅保留用戶名前兩位與域名
func Email(s string) string {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return String(s, 1, 0)
	}
	name := []rune(s[:at])
	domain := s[at:]

	if len(name) > 2 {
		return string(name[:2]) + "***" + domain
	}
	return string(name[:1]) + "***" + domain
}
