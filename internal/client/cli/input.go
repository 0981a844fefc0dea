package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetYesNo prints a yes/no prompt and interprets the answer. An empty line
// picks defaultYes. Anything starting with y or Y is yes, anything starting
// with n or N is no; other input repeats the question.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer, defaultYes bool) (bool, error) {
	for {
		answer, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return false, err
		}
		if answer == "" {
			return defaultYes, nil
		}
		switch strings.ToLower(answer)[:1] {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
