package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var version = "dev"

type options struct {
	configPath  string
	textPath    string
	alphabet    string
	clipboard   bool
	snapshot    string
	factor      float64
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("lettersort %s\n", version)
		return 0
	}

	closer, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: debug log: %v\n", err)
		return 1
	}
	defer closer.Close()

	config, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	opts.apply(config)

	session, err := LoadSession(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.snapshot != "" {
		if err := session.ExportPNG(opts.snapshot, opts.factor); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(
		initialModel(session, config),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default ~/.lettersortrc)")
	flag.StringVar(&opts.textPath, "text", "", "Source text file")
	flag.StringVar(&opts.alphabet, "alphabet", "", "Ordered set of recognized symbols")
	flag.BoolVar(&opts.clipboard, "clipboard", false, "Read the source text from the clipboard")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Render one frame to this PNG file and exit")
	flag.Float64Var(&opts.factor, "factor", 0, "Interpolation factor for -snapshot (0 = flow, 1 = sorted)")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.Parse()

	if opts.textPath == "" && flag.NArg() > 0 {
		opts.textPath = flag.Arg(0)
	}
	return opts
}

func (o options) apply(config *Config) {
	if o.textPath != "" {
		config.TextPath = o.textPath
	}
	if o.alphabet != "" {
		config.Alphabet = o.alphabet
	}
	if o.clipboard {
		config.FromClipboard = true
	}
}

func initialModel(session *Session, config *Config) model {
	background := "#ffffff"
	if lipgloss.HasDarkBackground() {
		background = "#000000"
	}
	return model{
		session:    session,
		config:     config,
		pointerX:   session.Geometry.PointerFor(0),
		background: background,
		mode:       ModeNormal,
	}
}

// commandForKey maps a key to a session command. Any single character
// becomes a letter toggle; the alphabet decides whether it does anything.
func commandForKey(key string) Command {
	switch key {
	case "1":
		return Command{Kind: CmdToggleLines}
	case "2":
		return Command{Kind: CmdToggleText}
	case "3":
		return Command{Kind: CmdAllOff}
	case "4":
		return Command{Kind: CmdAllOn}
	case "5":
		return Command{Kind: CmdToggleAlpha}
	case "ctrl+s":
		return Command{Kind: CmdSaveSnapshot}
	case "ctrl+t":
		return Command{Kind: CmdSaveText}
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return Command{Kind: CmdToggleLetter, Letter: r}
	}
	return Command{Kind: CmdNone}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		width, _ := m.canvasSize()
		m.pointerX = (float64(msg.X) + 0.5) / float64(width) * m.session.Geometry.Width
		m.ensurePointerInBounds()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "esc":
			if m.mode == ModeHelp && key == "esc" {
				m.mode = ModeNormal
				return m, nil
			}
			return m, tea.Quit
		case "f1":
			if m.mode == ModeHelp {
				m.mode = ModeNormal
			} else {
				m.mode = ModeHelp
			}
			return m, nil
		case "left", "right", "shift+left", "shift+right", "home", "end":
			m.handleNavigation(key)
			return m, nil
		}
		if m.mode == ModeHelp {
			m.mode = ModeNormal
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		m.handleCommand(commandForKey(key))
		return m, nil
	}
	return m, nil
}

// handleCommand is the single place where toggle state changes.
func (m *model) handleCommand(cmd Command) {
	switch cmd.Kind {
	case CmdNone:
	case CmdSaveSnapshot:
		filename := m.config.GetSavePath(snapshotName)
		if err := m.session.ExportPNG(filename, m.factor()); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PNG: %v", err)
			logger().Warn("snapshot failed", "file", filename, "err", err)
			return
		}
		m.successMessage = fmt.Sprintf("Saved %s", filename)
	case CmdSaveText:
		filename := m.config.GetSavePath(visualTXTName)
		if err := m.exportVisualTXT(filename); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting text: %v", err)
			return
		}
		m.successMessage = fmt.Sprintf("Saved %s", filename)
	default:
		m.session.Handle(cmd)
	}
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	var result strings.Builder
	for _, line := range m.canvas().Render() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m model) statusLine() string {
	vis := m.session.Visibility
	status := fmt.Sprintf("%s | factor %.2f | lines %s | text %s | alpha %s | letters %d/%d | F1 help",
		m.modeString(),
		m.factor(),
		onOff(vis.Lines),
		onOff(vis.Text),
		onOff(vis.Alpha),
		vis.EnabledLetters(),
		m.session.Alphabet.Len())
	line := statusStyle.Render(status)
	if m.errorMessage != "" {
		line += "  " + errorStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		line += "  " + successStyle.Render(m.successMessage)
	}
	return line
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "SORT"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"lettersort Help",
		"===============",
		"",
		"Mouse:",
		"------",
		"  move left/right  Interpolate between text flow and sorted rows",
		"  ←/→              Move the pointer (Shift for larger steps)",
		"  Home/End         Jump to flow / sorted view",
		"",
		"Toggles:",
		"--------",
		"  1                Lines on/off",
		"  2                Text on/off",
		"  3                All letters off",
		"  4                All letters on",
		"  5                Frequency alpha on/off",
		"  letter keys      Switch that letter on/off",
		"",
		"Files:",
		"------",
		"  Ctrl+S           Save PNG snapshot",
		"  Ctrl+T           Save text snapshot",
		"",
		"  F1               Toggle this help screen",
		"  Esc/Ctrl+C       Quit",
		"",
		"Alphabet: " + fmt.Sprintf("%q", m.session.Alphabet.String()),
	}
	return strings.Join(helpLines, "\n")
}
