package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"legal-research-assistant/pkg/response"
)

// List godoc
// @Summary     List registered tools
// @Description Returns the name, description, and JSON schema parameters of every registered tool.
// @Tags        Tools
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tools [GET]
func (h *handler) List(c *gin.Context) {
	all := h.registry.List()

	items := make([]toolResp, 0, len(all))
	for _, t := range all {
		items = append(items, toolResp{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	response.OK(c, listResp{Tools: items})
}

// Execute godoc
// @Summary     Execute a tool
// @Description Runs the named tool with the given parameters and returns its result.
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       name path string            true "Tool name"
// @Param       body body map[string]interface{} true "Tool parameters"
// @Success     200 {object} executeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Tool not found"
// @Router      /api/v1/tools/{name} [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	tool, ok := h.registry.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   "tool not found: " + name,
		})
		return
	}

	params := make(map[string]interface{})
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	result, err := tool.Execute(ctx, params)
	if err != nil {
		h.l.Errorf(ctx, "tool %s: %v", name, err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, executeResp{Tool: name, Result: result})
}
