package api

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestStartReturnsAfterGracefulShutdown(t *testing.T) {
	server := Server{
		Server:      &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()},
		startupTime: time.Now(),
	}

	// Nobody receives from errChannel, as in main once shutdown has begun.
	errChannel := make(chan error, 2)
	done := make(chan struct{})
	go func() {
		server.Start(errChannel)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	server.ShutdownGracefully(time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start is still blocked after shutdown")
	}
	if err := <-errChannel; !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("Start sent %v, want ErrServerClosed", err)
	}
}
