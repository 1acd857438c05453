package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/output"
)

func TestTextWriterWritesPlainTextWithoutTerminal(testInstance *testing.T) {
	outputBuffer := &strings.Builder{}
	textWriter := output.NewTextWriter(outputBuffer)

	textWriter.Banner("🐙 GitHub Zero - Repository Manager")
	textWriter.Line("%s %s", textWriter.Comment("1."), textWriter.Info("octo/hello"))
	textWriter.Line("%s", textWriter.Error("❌ failed"))

	expected := "\n🐙 GitHub Zero - Repository Manager\n═══════════════════════════════════\n\n1. octo/hello\n❌ failed\n"
	require.Equal(testInstance, expected, outputBuffer.String())
	require.Same(testInstance, outputBuffer, textWriter.Writer())
}

func TestRules(testInstance *testing.T) {
	require.Equal(testInstance, "═══", output.SectionRule(3))
	require.Equal(testInstance, "──", output.SeparatorRule(2))
}
