package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTitle heads every rendered table unless overridden.
const DefaultTitle = "IPO Algorithm tests output"

// ErrUnknownBorder is returned by ParseBorder for an unsupported name.
var ErrUnknownBorder = errors.New("render: unknown border")

// Border selects the table frame.
type Border string

const (
	BorderNormal   Border = "normal"   // box-drawing lines
	BorderRounded  Border = "rounded"  // box-drawing with rounded corners
	BorderASCII    Border = "ascii"    // +, -, | only; safe for pipes and logs
	BorderMarkdown Border = "markdown" // GitHub-flavoured pipe table
)

// ParseBorder validates a border name; "" selects BorderNormal.
func ParseBorder(name string) (Border, error) {
	switch b := Border(name); b {
	case "":
		return BorderNormal, nil
	case BorderNormal, BorderRounded, BorderASCII, BorderMarkdown:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}
}

func (b Border) lipgloss() lipgloss.Border {
	switch b {
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	case BorderMarkdown:
		return lipgloss.MarkdownBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// Option customizes Table.
type Option func(*tableConfig)

type tableConfig struct {
	title  string
	border Border
}

// WithTitle replaces DefaultTitle; "" omits the title line.
func WithTitle(title string) Option {
	return func(c *tableConfig) { c.title = title }
}

// WithBorder selects the frame. Panics on a name ParseBorder rejects.
func WithBorder(b Border) Option {
	if _, err := ParseBorder(string(b)); err != nil {
		panic("render: WithBorder(" + string(b) + ")")
	}
	return func(c *tableConfig) { c.border = b }
}
