package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()
var closeSink = func() {}
var verbose bool

// Init opens <dir>/addrbook.log and routes the file log there, releasing any
// sink from a previous Init. Console output is unaffected.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	ws, closeFn, err := zap.Open(filepath.Join(dir, "addrbook.log"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	Close()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zapcore.DebugLevel)
	logger = zap.New(core)
	closeSink = closeFn
	return nil
}

// Close flushes and closes the file log. Logging afterwards is a no-op.
func Close() {
	_ = logger.Sync()
	closeSink()
	logger = zap.NewNop()
	closeSink = func() {}
}

func Success(msg string) {
	fmt.Println(text.FgGreen.Sprint(msg))
	logger.Info(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, text.FgRed.Sprint(msg))
	logger.Error(msg)
}

func Gray(msg string) {
	fmt.Println(text.FgHiBlack.Sprint(msg))
	logger.Info(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug always reaches the file log; stdout only in verbose mode.
func Debug(msg string) {
	logger.Debug(msg)
	if !verbose {
		return
	}
	fmt.Println(text.FgHiBlack.Sprint(msg))
}
