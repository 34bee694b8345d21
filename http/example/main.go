/*
Package main provides a toy example use of wings' controller context,
focusing on the basics of:

(1) constructing a default Ranger;
(2) binding routes to controllers;
(3) reading parameters, attributes, and URL parameters through a *ctrl.Context;
(4) and stopping a reply early.

Run it and try:

	curl 'localhost:3000/?name=Alice'
	curl -d 'user=bob' localhost:3000/login
	curl localhost:3000/users/7
	curl localhost:3000/admin
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/xy-planning-network/wings/http/ctrl"
	"github.com/xy-planning-network/wings/http/host"
	"github.com/xy-planning-network/wings/http/middleware"
	"github.com/xy-planning-network/wings/http/router"
	"github.com/xy-planning-network/wings/ranger"
)

const greeterAttr = "greeter"

// greeter stashes name in the request's attributes for controllers to read back.
func greeter(name string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if attrs, ok := host.AttributesFromContext(r.Context()); ok {
				attrs.Set(greeterAttr, name)
			}

			h.ServeHTTP(w, r)
		})
	}
}

// root greets whoever is named in the query string.
// Without a name, the failure to find one is reported and the greeting is anonymous.
func root(c *ctrl.Context) {
	name := c.URLParam("name")
	if name == "" {
		name = "stranger"
	}

	c.Printf("%v says hello, %s\n", c.Attribute(greeterAttr), name)
}

// login echoes back every submitted parameter.
func login(c *ctrl.Context) {
	params := c.Params()
	if _, ok := params["user"]; !ok {
		c.WriteString("who are you?\n")
		c.Stop()
		return
	}

	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	c.Printf("welcome %s (%s)\n", c.Param("user"), strings.Join(pairs, ", "))
}

// user shows a route variable.
func user(c *ctrl.Context) {
	c.Printf("user #%s\n", c.PathParam("id"))
}

// admin stops the reply before any more can be written.
func admin(c *ctrl.Context) {
	c.WriteString("access denied\n")
	c.Stop()

	// NOTE: rejected, and reported, since the reply has stopped
	c.WriteString("the secret is 42\n")
}

func routes() []router.Route {
	return []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: root},
		{Path: "/login", Method: http.MethodPost, Handler: login},
		{Path: "/users/{id:[0-9]+}", Method: http.MethodGet, Handler: user},
		{Path: "/admin", Method: http.MethodGet, Handler: admin},
	}
}

func main() {
	rng, err := ranger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng.OnEveryRequest(middleware.RateLimit(middleware.NewVisitors()))
	rng.HandleRoutes(routes(), greeter("wings"))

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Error(err.Error(), nil)
		os.Exit(1)
	}
}
