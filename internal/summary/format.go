// Package summary renders a merged game record as display-ready text.
package summary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Hxfrzc/galinfo/internal/ymgal"
)

// paragraphIndent matches the fixed-width indent of the original layout.
const paragraphIndent = "       "

var whitespaceRun = regexp.MustCompile(`\s+`)

// Render produces the fixed-layout summary block: title, publisher, the
// restriction and localization flags, then the reflowed introduction.
func Render(rec *ymgal.MergedRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "游戏名：%s（%s）\n", rec.Title, rec.ChineseTitle)
	fmt.Fprintf(&b, "会社：%s（%s）\n", rec.PublisherName, rec.PublisherChineseName)
	fmt.Fprintf(&b, "限制级：%s\n", yesNo(rec.AgeRestricted))
	fmt.Fprintf(&b, "是否已有汉化：%s\n", yesNo(rec.HasChinese))
	fmt.Fprintf(&b, "简介：\n%s", reflow(rec.Introduction))
	return b.String()
}

// RenderPublisher produces the standalone organization block for the
// info-only lookup mode.
func RenderPublisher(pub *ymgal.Publisher) string {
	var b strings.Builder
	fmt.Fprintf(&b, "会社：%s（%s）\n", pub.Name, pub.ChineseName)
	fmt.Fprintf(&b, "国家：%s\n", pub.Country)
	fmt.Fprintf(&b, "简介：\n%s", reflow(pub.Introduction))
	return b.String()
}

// reflow splits the introduction into paragraphs on newlines, falling back
// to blank-line boundaries when that yields a single block. Whitespace runs
// inside a paragraph are dropped entirely: the text is CJK prose where
// stray spaces are layout noise, not word separators.
func reflow(intro string) string {
	paragraphs := strings.Split(intro, "\n")
	if len(paragraphs) < 2 {
		paragraphs = strings.Split(intro, "\n\n")
	}

	cleaned := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		cleaned = append(cleaned, paragraphIndent+whitespaceRun.ReplaceAllString(strings.TrimSpace(p), ""))
	}

	return strings.Join(cleaned, "\n")
}

func yesNo(v bool) string {
	if v {
		return "是"
	}
	return "否"
}
