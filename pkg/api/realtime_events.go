package api

import (
	"encoding/json"

	"github.com/avnit77/recipes/pkg/api/resource"
	"github.com/avnit77/recipes/pkg/notify"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// realtimeEventsHandler streams event notifications to a websocket client
// until the client goes away.
func (h *Handler) realtimeEventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			log.Error("api: failed to upgrade to websocket: ", err)
			return nil
		}
		defer conn.Close()

		msgCh := make(chan *nats.Msg, 64)
		sub, err := h.nc.ChanSubscribe(notify.SubjectWildcard, msgCh)
		if err != nil {
			log.Error("api: failed to subscribe to event notifications: ", err)
			return nil
		}
		defer sub.Unsubscribe()

		// Drain client frames so close and ping are handled
		closedCh := make(chan struct{})
		go func() {
			defer close(closedCh)
			for {
				if _, _, err := wsutil.ReadClientData(conn); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg := <-msgCh:
				var data interface{}
				if err := json.Unmarshal(msg.Data, &data); err != nil {
					log.Warn("api: dropping malformed event notification: ", err)
					continue
				}

				event := resource.NewRealtimeEvent(notify.ActionFromSubject(msg.Subject), data)
				out, _ := json.Marshal(event)
				if err := wsutil.WriteServerMessage(conn, ws.OpText, out); err != nil {
					log.Error("api: failed to send realtime event: ", err)
					return nil
				}
			case <-closedCh:
				return nil
			}
		}
	}
}
