package http

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

// LoadTemplates installs the helper funcs the page templates use and
// parses them from the given glob. Must run before RegisterRoutes.
func LoadTemplates(r *gin.Engine, glob string) {
	r.SetFuncMap(template.FuncMap{
		// dict builds the pipeline argument for the bucket template.
		"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
	})
	r.LoadHTMLGlob(glob)
}
