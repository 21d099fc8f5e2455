package game

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type wsConn struct {
	socket *websocket.Conn
}

func (wc *wsConn) Write(data []byte) error {
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *wsConn) Ping() error {
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *wsConn) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *wsConn) Close(reason string) {
	wc.socket.SetWriteDeadline(time.Now().Add(time.Second * 20))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	wc.socket.Close()
}

func newWSConn(conn *websocket.Conn) *wsConn {
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(time.Minute))
		return nil
	})
	return &wsConn{socket: conn}
}

type Handler struct {
	hub     *Hub
	tickers TickerCreator
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub, tickers: NewTickerGen()}
}

// ServeWS upgrades the request and runs the session pumps. The handler
// blocks for the lifetime of the connection.
func (h *Handler) ServeWS(ctx *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Origins are already filtered by the router middleware.
		CheckOrigin: func(*http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	session := NewSession(newWSConn(conn), h.hub)
	h.hub.Attach(session)
	go session.WritePump(h.tickers)
	session.ReadPump()
}
