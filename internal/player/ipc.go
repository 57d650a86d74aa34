package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// socketWait bounds how long a command waits for a freshly launched player
// to create its IPC socket.
const socketWait = 2 * time.Second

type dialFunc func(ctx context.Context, path string) (net.Conn, error)

type ipcCommand struct {
	Command []any `json:"command"`
}

type ipcReply struct {
	Error *string `json:"error"`
	Event string  `json:"event"`
}

func dialUnix(ctx context.Context, path string) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, socketWait)
	defer cancel()

	var d net.Dialer
	for {
		conn, err := d.DialContext(ctx, "unix", path)
		if err == nil {
			return conn, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connecting to player: %w", err)
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// encodeCommand renders one IPC request line.
func encodeCommand(args ...any) ([]byte, error) {
	data, err := json.Marshal(ipcCommand{Command: args})
	if err != nil {
		return nil, fmt.Errorf("encoding player command: %w", err)
	}
	return append(data, '\n'), nil
}

// sendCommand writes one command and waits for its reply, skipping
// unsolicited event lines.
func sendCommand(ctx context.Context, dial dialFunc, path string, args ...any) error {
	line, err := encodeCommand(args...)
	if err != nil {
		return err
	}

	conn, err := dial(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(socketWait))
	}

	if _, err := conn.Write(line); err != nil {
		return fmt.Errorf("writing player command: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var reply ipcReply
		if err := json.Unmarshal(scanner.Bytes(), &reply); err != nil {
			return fmt.Errorf("parsing player reply: %w", err)
		}
		if reply.Event != "" || reply.Error == nil {
			continue
		}
		if *reply.Error != "success" {
			return fmt.Errorf("player command %v: %s", args[0], *reply.Error)
		}
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading player reply: %w", err)
	}
	return fmt.Errorf("player closed connection without reply")
}
