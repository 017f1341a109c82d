package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// setRunEnv points run at a temp SQLite file and the given port, from an
// empty working directory so no .env is read.
func setRunEnv(t *testing.T, port int) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "test.db"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("REGISTER_RATE", "")
	t.Setenv("REGISTER_BURST", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_PortInUseReturnsError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	setRunEnv(t, ln.Addr().(*net.TCPAddr).Port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx)
	if err == nil {
		t.Fatal("expected an error when the port is already taken")
	}
	if !strings.Contains(err.Error(), "serve") {
		t.Fatalf("expected a serve error, got %v", err)
	}
}

func TestRun_InvalidConfigReturnsError(t *testing.T) {
	setRunEnv(t, 0)
	t.Setenv("DATABASE_DRIVER", "mysql")

	if err := run(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid configuration")
	}
}

func TestRun_CleanShutdownReturnsNil(t *testing.T) {
	// Reserve a free port, then release it for run to bind.
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	setRunEnv(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	// Wait until the server accepts connections before stopping it.
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.Dial("tcp", "127.0.0.1:"+strconv.Itoa(port))
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
