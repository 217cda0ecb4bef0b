package service

import "sync"

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// SyncConn lets the read loop of a connection and the game broadcasts
// write to it from different goroutines. The websocket connection itself
// supports a single concurrent writer.
type SyncConn struct {
	conn Conn
	mu   sync.Mutex
}

func NewSyncConn(conn Conn) *SyncConn {
	return &SyncConn{conn: conn}
}

func (c *SyncConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *SyncConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
