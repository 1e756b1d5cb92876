package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/tidwall/gjson"

	"github.com/tinwell/muster/extract"
	"github.com/tinwell/muster/ipc"
	"github.com/tinwell/muster/model"
	"github.com/tinwell/muster/service"
)

const banner = `
███╗   ███╗██╗   ██╗███████╗████████╗███████╗██████╗
████╗ ████║██║   ██║██╔════╝╚══██╔══╝██╔════╝██╔══██╗
██╔████╔██║██║   ██║███████╗   ██║   █████╗  ██████╔╝
██║╚██╔╝██║██║   ██║╚════██║   ██║   ██╔══╝  ██╔══██╗
██║ ╚═╝ ██║╚██████╔╝███████║   ██║   ███████╗██║  ██║
╚═╝     ╚═╝ ╚═════╝ ╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝

Roster Compactor`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	filterSrc := flag.String("filter", "", "expression selecting which units stay in the output, e.g. 'Points() > 100'")
	serve := flag.Bool("serve", false, "run as a unix-socket service instead of converting one file")
	socketPath := flag.String("socket", "/tmp/muster.sock", "socket path for -serve")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.json> <output.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *serve {
		runServe(*socketPath)
		return
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := convert(flag.Arg(0), flag.Arg(1), *filterSrc); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

// convert reads one roster export, runs the extraction, and writes the
// summary in a single shot; no partial output lands on failure.
func convert(inputPath, outputPath, filterSrc string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("input %s is not valid JSON", inputPath)
	}

	out := extract.Extract(gjson.ParseBytes(raw))

	if filterSrc != "" {
		prog, err := extract.CompileFilter(filterSrc)
		if err != nil {
			return err
		}
		if err := extract.ApplyFilter(out, prog); err != nil {
			return err
		}
	}

	encoded, err := encodeRoster(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	ratio := float64(len(encoded)) / float64(len(raw))
	fmt.Printf("Original file size: %d bytes\n", len(raw))
	fmt.Printf("Optimized file size: %d bytes\n", len(encoded))
	fmt.Printf("Compression ratio: %.2f\n", ratio)
	fmt.Printf("Space saving: %.1f%%\n", (1-ratio)*100)
	return nil
}

// encodeRoster serializes with two-space indentation and without HTML
// escaping, so mode markers like ➤ survive verbatim.
func encodeRoster(out *model.Roster) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return buf.Bytes(), nil
}

func runServe(socketPath string) {
	fmt.Println(banner)
	slog.Info("starting muster service")

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(conn net.Conn) {
	c := ipc.NewConnection(conn, nil)
	s := service.New(c)
	c.RegisterHandler(ipc.TypeHello, s.HandleHello)
	c.RegisterHandler(ipc.TypeRoster, s.HandleRoster)
	c.ReadLoop()
}
