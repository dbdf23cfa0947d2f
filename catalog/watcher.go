package catalog

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch reloads the overlay file whenever it changes on disk. The containing
// directory is watched so the file may be replaced atomically or not exist
// yet. Failed reloads keep the current tables.
func (c *Static) Watch(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go c.watchLoop(watcher, path)
	return nil
}

func (c *Static) watchLoop(watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()

	base := filepath.Base(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.LoadOverlay(path); err != nil {
				log.WithFields(log.Fields{
					"event": "catalog_reload",
				}).Error("Could not reload the catalog overlay file, keeping the current tables: " + err.Error())
				continue
			}
			log.WithFields(log.Fields{
				"event": "catalog_reload",
			}).Info("Reloaded the catalog overlay file at `" + path + "`")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithFields(log.Fields{
				"event": "catalog_reload",
			}).Error("Catalog overlay watcher error: " + err.Error())
		}
	}
}
