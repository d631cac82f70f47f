package ui_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/autosync/internal/ui"
)

func TestBannerRendererIncludesEveryLine(testInstance *testing.T) {
	renderer := ui.NewBannerRenderer()

	rendered := renderer.RenderSuccess("PUSH SUCCESSFUL", "Dashboard: https://dashboard.example.com")

	require.Contains(testInstance, rendered, "PUSH SUCCESSFUL")
	require.Contains(testInstance, rendered, "Dashboard: https://dashboard.example.com")
}

func TestBannerRendererSkipsBlankLines(testInstance *testing.T) {
	renderer := ui.NewBannerRenderer()

	rendered := renderer.RenderNotice("NOTHING NEW TO PUSH", "   ")

	require.Contains(testInstance, rendered, "NOTHING NEW TO PUSH")
}

func TestBannerRendererFailureMentionsMessage(testInstance *testing.T) {
	renderer := ui.NewBannerRenderer()

	rendered := renderer.RenderFailure("PUSH FAILED", "Check your internet connection or credentials")

	require.Contains(testInstance, rendered, "PUSH FAILED")
	require.Contains(testInstance, rendered, "credentials")
}
