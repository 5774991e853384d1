package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	adminkit "github.com/tokenbrush/adminkit"
	"github.com/tokenbrush/adminkit/guard"
)

// Console bundles the shared state every command needs: the SDK controller,
// a logger, and the output streams.
type Console struct {
	Controller *adminkit.Controller
	Log        *zap.Logger
	Out        io.Writer
	In         io.Reader
}

// NewConsole creates a Console writing tables to out. A nil logger is
// replaced with a no-op logger, a nil reader with os.Stdin.
func NewConsole(ctrl *adminkit.Controller, log *zap.Logger, out io.Writer) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Console{Controller: ctrl, Log: log, Out: out, In: os.Stdin}
}

// InitLogger sets up the zap logger to log to stderr in a human readable
// format.
func InitLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, _ := cfg.Build()
	return logger
}

// ScreenNavigator logs route changes pushed by the controller. A terminal
// has no screens to switch, so the route is surfaced as a log line.
type ScreenNavigator struct {
	Log *zap.Logger
}

// Navigate implements [adminkit.Navigator].
func (n *ScreenNavigator) Navigate(route string) {
	if n.Log != nil {
		n.Log.Info("screen change", zap.String("route", route))
	}
}

// requireAdmin gates the resource commands the way the web console gates its
// admin routes. Login and account commands bypass it.
func (c *Console) requireAdmin(screen string) error {
	v := guard.Require(c.Controller.Session(), screen, "admin")
	switch {
	case v.Allow:
		return nil
	case v.Pending:
		return fmt.Errorf("session still resolving, retry")
	case v.Redirect == adminkit.RouteForbidden:
		return fmt.Errorf("admin role required")
	default:
		return fmt.Errorf("not signed in, run: tbadmin login")
	}
}

// promptLine reads one line from the console's input, used when a required
// value was not passed as a flag.
func (c *Console) promptLine(label string) (string, error) {
	fmt.Fprintf(c.Out, "%s: ", label)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// table renders rows with aligned columns. The first row is the header.
func (c *Console) table(rows [][]string) {
	w := tabwriter.NewWriter(c.Out, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func formatActive(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
