// Package printer hands rendered receipts to whatever prints them.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

type Printer interface {
	Print(ctx context.Context, orderNumber, document string) error
}

// WriterPrinter copies documents to an io.Writer such as a serial port or
// stdout.
type WriterPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w: w}
}

func (p *WriterPrinter) Print(_ context.Context, _ string, document string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.w, document); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

// SpoolPrinter drops each document into dir as <order number>.txt for a
// print daemon to pick up.
type SpoolPrinter struct {
	dir string
}

func NewSpoolPrinter(dir string) (*SpoolPrinter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create spool dir: %w", err)
	}
	return &SpoolPrinter{dir: dir}, nil
}

func (p *SpoolPrinter) Print(ctx context.Context, orderNumber, document string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(p.dir, filepath.Base(orderNumber)+".txt")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return fmt.Errorf("failed to spool receipt %s: %w", orderNumber, err)
	}
	return nil
}
