package navigation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/httpapi"
	"github.com/civisafe/civisafe/pkg/types"
)

// Item is the JSON shape the frontend renders its menus from.
type Item struct {
	Name     string `json:"name"`
	Href     string `json:"href"`
	Children []Item `json:"children,omitempty"`
}

// Controller serves the navigation items modules registered on the
// application.
type Controller struct {
	app application.Application
}

func NewController(app application.Application) application.Controller {
	return &Controller{app: app}
}

func (c *Controller) Key() string {
	return "/navigation"
}

func (c *Controller) Register(r *mux.Router) {
	r.HandleFunc("/navigation", c.List).Methods(http.MethodGet)
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, mapItems(c.app.NavItems()))
}

func mapItems(items []types.NavigationItem) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, Item{
			Name:     item.Name,
			Href:     item.Href,
			Children: mapItems(item.Children),
		})
	}
	return out
}
