package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	successBannerColorConstant = "42"
	failureBannerColorConstant = "196"
	noticeBannerColorConstant  = "214"
	bannerPaddingConstant      = 1
	bannerLineSeparator        = "\n"
)

// BannerRenderer draws bordered, colored terminal banners for pipeline outcomes.
type BannerRenderer struct {
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
	noticeStyle  lipgloss.Style
}

// NewBannerRenderer constructs a renderer with the default banner palette.
func NewBannerRenderer() *BannerRenderer {
	baseStyle := lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		Padding(0, bannerPaddingConstant)

	return &BannerRenderer{
		successStyle: baseStyle.Foreground(lipgloss.Color(successBannerColorConstant)).BorderForeground(lipgloss.Color(successBannerColorConstant)),
		failureStyle: baseStyle.Foreground(lipgloss.Color(failureBannerColorConstant)).BorderForeground(lipgloss.Color(failureBannerColorConstant)),
		noticeStyle:  baseStyle.Foreground(lipgloss.Color(noticeBannerColorConstant)).BorderForeground(lipgloss.Color(noticeBannerColorConstant)),
	}
}

// RenderSuccess draws the supplied lines inside the success banner.
func (renderer *BannerRenderer) RenderSuccess(bannerLines ...string) string {
	return renderer.successStyle.Render(joinBannerLines(bannerLines))
}

// RenderFailure draws the supplied lines inside the failure banner.
func (renderer *BannerRenderer) RenderFailure(bannerLines ...string) string {
	return renderer.failureStyle.Render(joinBannerLines(bannerLines))
}

// RenderNotice draws the supplied lines inside the notice banner.
func (renderer *BannerRenderer) RenderNotice(bannerLines ...string) string {
	return renderer.noticeStyle.Render(joinBannerLines(bannerLines))
}

func joinBannerLines(bannerLines []string) string {
	trimmedLines := make([]string, 0, len(bannerLines))
	for _, bannerLine := range bannerLines {
		trimmedLine := strings.TrimSpace(bannerLine)
		if len(trimmedLine) == 0 {
			continue
		}
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	return strings.Join(trimmedLines, bannerLineSeparator)
}
