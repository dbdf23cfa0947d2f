package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shamanec/GADS-sim-provider/catalog"

	log "github.com/sirupsen/logrus"
)

var deviceCatalog *catalog.Static

var upgrader = websocket.Upgrader{
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	CheckOrigin:      func(r *http.Request) bool { return true },
	HandshakeTimeout: time.Duration(time.Second * 5),
}

// @Summary      Subscribe to catalog reload events
// @Description  Upgrades to a websocket pushing an event each time the device/OS catalog is reloaded from its overlay file
// @Tags         catalog
// @Router       /catalog-events [get]
func CatalogEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithFields(log.Fields{
			"event": "catalog_events",
		}).Error("WebSocket upgrade error: " + err.Error())
		return
	}
	defer conn.Close()

	events := deviceCatalog.Subscribe()
	defer deviceCatalog.Unsubscribe(events)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event := <-events:
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func HandleRequests(cat *catalog.Static) *gin.Engine {
	deviceCatalog = cat

	router := gin.Default()
	router.GET("/configuration/default", GetDefaultConfiguration)
	router.POST("/configuration/derive", DeriveConfiguration)
	router.GET("/catalog/devices", GetCatalogDevices)
	router.GET("/catalog/os-versions", GetCatalogOSVersions)
	router.GET("/catalog/devices/:name/os-versions", GetDeviceOSVersions)
	router.GET("/catalog/devices/:name/newest-os", GetDeviceNewestOS)
	router.POST("/configurations", CreateConfiguration)
	router.GET("/configurations", GetConfigurations)
	router.GET("/configurations/:id", GetConfiguration)
	router.DELETE("/configurations/:id", DeleteConfiguration)
	router.GET("/configurations/:id/plist", GetConfigurationPlist)
	router.GET("/configurations/:id/profile", GetConfigurationProfile)
	router.GET("/catalog-events", CatalogEvents)
	router.GET("/logs", GetLogs)

	return router
}
