package syncer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	commitMessagePromptConstant       = "Enter commit message: "
	acknowledgementPromptConstant     = "Press Enter to exit..."
	promptWriteErrorTemplateConstant  = "failed to write prompt: %w"
	promptReadErrorTemplateConstant   = "failed to read operator input: %w"
)

// IOMessagePrompter gathers operator input from a terminal-style reader and writer.
type IOMessagePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOMessagePrompter constructs a prompter over the provided streams.
func NewIOMessagePrompter(inputReader io.Reader, outputWriter io.Writer) *IOMessagePrompter {
	return &IOMessagePrompter{reader: bufio.NewReader(inputReader), writer: outputWriter}
}

// PromptCommitMessage asks the operator for a commit message and returns the trimmed line.
func (prompter *IOMessagePrompter) PromptCommitMessage() (string, error) {
	if _, writeError := fmt.Fprint(prompter.writer, commitMessagePromptConstant); writeError != nil {
		return "", fmt.Errorf(promptWriteErrorTemplateConstant, writeError)
	}
	inputLine, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", fmt.Errorf(promptReadErrorTemplateConstant, readError)
	}
	return strings.TrimSpace(inputLine), nil
}

// AwaitAcknowledgement blocks until the operator presses Enter.
func (prompter *IOMessagePrompter) AwaitAcknowledgement() error {
	if _, writeError := fmt.Fprint(prompter.writer, acknowledgementPromptConstant); writeError != nil {
		return fmt.Errorf(promptWriteErrorTemplateConstant, writeError)
	}
	if _, readError := prompter.reader.ReadString('\n'); readError != nil && readError != io.EOF {
		return fmt.Errorf(promptReadErrorTemplateConstant, readError)
	}
	return nil
}
