package sketchbook

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/sketchbook/utils"
	"golang.org/x/term"
)

// ErrTerminalPipe is returned when the pipe name is used while stdout is a terminal.
var ErrTerminalPipe = errors.New("`-` should be used with a pipe for stdout")

// Ops holds the output related options of a run.
type Ops struct {
	Dst, PipeName string
	// Format overrides the format deduced from Dst. It is required when writing to a pipe.
	Format Format
	Quiet  bool
}

// Execute generates the selected sketch and writes it to the destination.
func (p *Processor) Execute(op *Ops) error {
	format, err := op.format()
	if err != nil {
		return err
	}

	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("✎ SKETCHBOOK", utils.StatusMessage),
		utils.Decoratef(utils.DefaultMessage, "⇢ drawing %s...", p.Sketch),
	)
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)
		if op.Quiet {
			p.Spinner.SetWriter(io.Discard)
		}
	}

	now := time.Now()
	err = op.process(p, format)
	op.printOpStatus(op.Dst, err)
	if err != nil {
		return err
	}
	if !op.Quiet {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
	return nil
}

// format resolves the output format, preferring an explicit one.
func (op *Ops) format() (Format, error) {
	if op.Format != 0 {
		return op.Format, nil
	}
	if op.Dst == op.PipeName {
		return PNG, nil
	}
	return FormatFromPath(op.Dst)
}

func (op *Ops) process(p *Processor, format Format) error {
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("✎ SKETCHBOOK", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the sketch has been drawn successfully ✔", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("✎ SKETCHBOOK", utils.StatusMessage),
		utils.DecorateText("drawing the sketch failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	dst, err := op.pathToFile(op.Dst)
	if err != nil {
		return err
	}
	p.Spinner.Start()

	// Capture CTRL-C and restore the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
	}()
	go func() {
		if _, ok := <-signalChan; !ok {
			return
		}
		p.Spinner.RestoreCursor()
		op.remove(dst)
		os.Exit(1)
	}()

	err = p.Process(dst, format)
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close the output file: %w", cerr)
		}
	}
	if err != nil {
		op.remove(dst)
		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()
		return err
	}

	p.Spinner.StopMsg = successMsg
	p.Spinner.Stop()
	return nil
}

// pathToFile converts the destination path to a writable file.
func (op *Ops) pathToFile(out string) (io.Writer, error) {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, ErrTerminalPipe
		}
		return os.Stdout, nil
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

// remove deletes a partially written output file.
func (op *Ops) remove(dst io.Writer) {
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		os.Remove(f.Name())
	}
}

// printOpStatus displays the outcome of the run.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Printf("%s%s",
			utils.DecorateText("\nError drawing the sketch", utils.ErrorMessage),
			utils.Decoratef(utils.DefaultMessage, "\n\tReason: %v\n", err),
		)
		return
	}
	if fname != op.PipeName && !op.Quiet {
		fmt.Fprintf(os.Stderr, "\nThe sketch has been saved as: %s %s\n\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
