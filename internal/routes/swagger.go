package routes

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// routeDoc is the swag document served at /swagger/doc.json. It is rebuilt
// from the engine's route table each time RegisterSwagger runs.
type routeDoc struct {
	mu  sync.RWMutex
	doc string
}

func (d *routeDoc) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc
}

func (d *routeDoc) set(doc string) {
	d.mu.Lock()
	d.doc = doc
	d.mu.Unlock()
}

var (
	apiDoc       = &routeDoc{}
	registerOnce sync.Once
)

// ginPathToSwaggerPath converts Gin path params :param to Swagger {param}
var ginPathParamRe = regexp.MustCompile(`:([^/]+)`)

func ginPathToSwaggerPath(path string) string {
	return ginPathParamRe.ReplaceAllString(path, "{$1}")
}

// RegisterSwagger documents every route registered so far and mounts the UI
// at /swagger/index.html.
func RegisterSwagger(r *gin.Engine) {
	apiDoc.set(buildSwaggerDoc(r.Routes()))
	registerOnce.Do(func() { swag.Register(swag.Name, apiDoc) })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

var errorSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"code":   map[string]interface{}{"type": "string", "example": "ESTIMATE_NOT_FOUND"},
		"detail": map[string]interface{}{"description": "message, or a list of {field, message} for VALIDATION_ERROR"},
	},
}

func buildSwaggerDoc(routes gin.RoutesInfo) string {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	paths := make(map[string]map[string]interface{})
	for _, route := range routes {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := ginPathToSwaggerPath(route.Path)
		if paths[path] == nil {
			paths[path] = make(map[string]interface{})
		}
		method := strings.ToLower(route.Method)

		op := map[string]interface{}{
			"summary":  route.Method + " " + route.Path,
			"tags":     []string{tagFor(route.Path)},
			"produces": []string{"application/json"},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{"description": "Success"},
				"404": map[string]interface{}{"description": "Not Found", "schema": errorSchema},
				"422": map[string]interface{}{"description": "Validation Error", "schema": errorSchema},
				"500": map[string]interface{}{"description": "Internal Server Error", "schema": errorSchema},
			},
		}

		var params []map[string]interface{}
		for _, m := range ginPathParamRe.FindAllStringSubmatch(route.Path, -1) {
			params = append(params, map[string]interface{}{
				"in": "path", "name": m[1], "required": true, "type": "string",
			})
		}
		if method == "post" || method == "put" || method == "patch" {
			op["consumes"] = []string{"application/json"}
			params = append(params, map[string]interface{}{
				"in": "body", "name": "body", "required": true,
				"schema": map[string]interface{}{"type": "object"},
			})
		}
		if len(params) > 0 {
			op["parameters"] = params
		}
		if strings.HasSuffix(route.Path, "/receipt") {
			op["produces"] = []string{"application/pdf"}
		}

		paths[path][method] = op
	}

	doc := map[string]interface{}{
		"swagger": "2.0",
		"info": map[string]interface{}{
			"title":       "Wave Estimates API",
			"description": "Customers, catalog items and estimates with line items.",
			"version":     "1.0",
		},
		"basePath": "/",
		"schemes":  []string{"http", "https"},
		"paths":    paths,
	}
	raw, _ := json.Marshal(doc)
	return string(raw)
}

func tagFor(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/api/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "api"
	}
	return parts[0]
}
