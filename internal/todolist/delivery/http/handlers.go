package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"session-todo/internal/model"
	"session-todo/internal/session"
	"session-todo/internal/todolist"
	"session-todo/pkg/response"
)

const listsPath = "/lists"

// Index redirects to the lists overview.
func (h *handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, listsPath)
}

// ListLists godoc
// @Summary     Lists overview
// @Description Renders all lists of the session, incomplete lists first.
// @Tags        Lists
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /lists [get]
func (h *handler) ListLists(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	out, err := h.uc.ListLists(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLists: %v", err)
		response.InternalError(c, err)
		return
	}

	h.render(c, sess, http.StatusOK, "lists.html", h.newListsView(out))
}

// NewList godoc
// @Summary     New list form
// @Tags        Lists
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /lists/new [get]
func (h *handler) NewList(c *gin.Context) {
	_, sess, ok := h.scope(c)
	if !ok {
		return
	}
	h.render(c, sess, http.StatusOK, "new_list.html", h.newNewListView(""))
}

// CreateList godoc
// @Summary     Create a list
// @Description Creates a list. An invalid or duplicate name re-renders the form with the error.
// @Tags        Lists
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       list_name formData string true "List name (1-100 characters, unique)"
// @Success     303 "Redirect to /lists"
// @Failure     422 {string} string "Form with error message"
// @Router      /lists [post]
func (h *handler) CreateList(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processListNameReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.CreateList(ctx, sc, req.toCreateInput()); err != nil {
		if !todolist.IsValidation(err) {
			h.l.Errorf(ctx, "uc.CreateList: %v", err)
			response.InternalError(c, err)
			return
		}
		httpErr := h.mapError(err)
		sess.SetError(httpErr.Message)
		h.render(c, sess, httpErr.Code, "new_list.html", h.newNewListView(req.ListName))
		return
	}

	sess.SetSuccess(msgListCreated)
	response.SeeOther(c, listsPath)
}

// DetailList godoc
// @Summary     Show a list
// @Description Renders one list with its todos, incomplete todos first. A bad index redirects to /lists.
// @Tags        Lists
// @Produce     html
// @Param       id path int true "List index"
// @Success     200 {string} string "HTML page"
// @Failure     302 "Redirect to /lists when the list does not exist"
// @Router      /lists/{id} [get]
func (h *handler) DetailList(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err != nil {
		h.fail(c, sess, err)
		return
	}

	out, err := h.uc.DetailList(ctx, sc, uri.ListIndex)
	if err != nil {
		h.fail(c, sess, err)
		return
	}

	h.render(c, sess, http.StatusOK, "list.html", h.newListView(out, ""))
}

// EditList godoc
// @Summary     Edit list form
// @Tags        Lists
// @Produce     html
// @Param       id path int true "List index"
// @Success     200 {string} string "HTML page"
// @Router      /lists/{id}/edit [get]
func (h *handler) EditList(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err != nil {
		h.fail(c, sess, err)
		return
	}

	out, err := h.uc.DetailList(ctx, sc, uri.ListIndex)
	if err != nil {
		h.fail(c, sess, err)
		return
	}

	h.render(c, sess, http.StatusOK, "edit_list.html", h.newEditListView(out, out.List.Name))
}

// RenameList godoc
// @Summary     Rename a list
// @Tags        Lists
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       id        path     int    true "List index"
// @Param       list_name formData string true "New list name"
// @Success     303 "Redirect to /lists/{id}"
// @Failure     422 {string} string "Edit form with error message"
// @Router      /lists/{id} [post]
func (h *handler) RenameList(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err != nil {
		h.fail(c, sess, err)
		return
	}
	req, err := h.processListNameReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.RenameList(ctx, sc, req.toRenameInput(uri.ListIndex))
	if err != nil {
		if !todolist.IsValidation(err) {
			h.fail(c, sess, err)
			return
		}
		detail, detailErr := h.uc.DetailList(ctx, sc, uri.ListIndex)
		if detailErr != nil {
			h.fail(c, sess, detailErr)
			return
		}
		httpErr := h.mapError(err)
		sess.SetError(httpErr.Message)
		h.render(c, sess, httpErr.Code, "edit_list.html", h.newEditListView(detail, req.ListName))
		return
	}

	sess.SetSuccess(msgListEdited)
	response.SeeOther(c, listPath(out.Index))
}

// DeleteList godoc
// @Summary     Delete a list
// @Description Deletes a list; later lists move down one index. XHR callers get the path to load next.
// @Tags        Lists
// @Produce     plain
// @Param       id               path   int    true  "List index"
// @Param       X-Requested-With header string false "XMLHttpRequest for XHR callers"
// @Success     200 {string} string "/lists (XHR)"
// @Success     303 "Redirect to /lists"
// @Failure     404 {object} response.Resp "List not found (XHR)"
// @Router      /lists/{id}/delete [post]
func (h *handler) DeleteList(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err == nil {
		err = h.uc.DeleteList(ctx, sc, uri.ListIndex)
	}
	if err != nil {
		if isXHR(c) {
			response.Error(c, h.mapError(err))
			return
		}
		h.fail(c, sess, err)
		return
	}

	if isXHR(c) {
		response.Text(c, listsPath)
		return
	}
	sess.SetSuccess(msgListDeleted)
	response.SeeOther(c, listsPath)
}

// CompleteAll godoc
// @Summary     Complete all todos of a list
// @Tags        Todos
// @Param       id path int true "List index"
// @Success     303 "Redirect to /lists/{id}"
// @Router      /lists/{id}/complete_all [post]
func (h *handler) CompleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err == nil {
		err = h.uc.CompleteAll(ctx, sc, uri.ListIndex)
	}
	if err != nil {
		h.fail(c, sess, err)
		return
	}

	sess.SetSuccess(msgAllCompleted)
	response.SeeOther(c, listPath(uri.ListIndex))
}

// AddTodo godoc
// @Summary     Add a todo to a list
// @Tags        Todos
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       id   path     int    true "List index"
// @Param       todo formData string true "Todo text (1-100 characters)"
// @Success     303 "Redirect to /lists/{id}"
// @Failure     422 {string} string "List page with error message"
// @Router      /lists/{id}/todos [post]
func (h *handler) AddTodo(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processListURI(c)
	if err != nil {
		h.fail(c, sess, err)
		return
	}
	req, err := h.processTodoReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.AddTodo(ctx, sc, req.toInput(uri.ListIndex)); err != nil {
		if !todolist.IsValidation(err) {
			h.fail(c, sess, err)
			return
		}
		detail, detailErr := h.uc.DetailList(ctx, sc, uri.ListIndex)
		if detailErr != nil {
			h.fail(c, sess, detailErr)
			return
		}
		httpErr := h.mapError(err)
		sess.SetError(httpErr.Message)
		h.render(c, sess, httpErr.Code, "list.html", h.newListView(detail, req.Todo))
		return
	}

	sess.SetSuccess(msgTodoAdded)
	response.SeeOther(c, listPath(uri.ListIndex))
}

// DeleteTodo godoc
// @Summary     Delete a todo
// @Description Deletes a todo; later todos move down one index. XHR callers get 204.
// @Tags        Todos
// @Param       id               path   int    true  "List index"
// @Param       todo_id          path   int    true  "Todo index"
// @Param       X-Requested-With header string false "XMLHttpRequest for XHR callers"
// @Success     204 "Deleted (XHR)"
// @Success     303 "Redirect to /lists/{id}"
// @Failure     404 {object} response.Resp "List or todo not found (XHR)"
// @Router      /lists/{id}/todos/{todo_id}/delete [post]
func (h *handler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processTodoURI(c)
	if err == nil {
		err = h.uc.DeleteTodo(ctx, sc, uri.toDeleteInput())
	}
	if err != nil {
		if isXHR(c) {
			response.Error(c, h.mapError(err))
			return
		}
		h.fail(c, sess, err)
		return
	}

	if isXHR(c) {
		response.NoContent(c)
		return
	}
	sess.SetSuccess(msgTodoDeleted)
	response.SeeOther(c, listPath(uri.ListIndex))
}

// UpdateTodo godoc
// @Summary     Set the completion state of a todo
// @Tags        Todos
// @Accept      x-www-form-urlencoded
// @Param       id        path     int    true "List index"
// @Param       todo_id   path     int    true "Todo index"
// @Param       completed formData string true "\"true\" to complete, anything else to reopen"
// @Success     303 "Redirect to /lists/{id}"
// @Router      /lists/{id}/todos/{todo_id} [post]
func (h *handler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	sc, sess, ok := h.scope(c)
	if !ok {
		return
	}

	uri, err := h.processTodoURI(c)
	if err != nil {
		h.fail(c, sess, err)
		return
	}
	req, err := h.processCompletedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetTodoCompleted(ctx, sc, req.toInput(uri)); err != nil {
		h.fail(c, sess, err)
		return
	}

	sess.SetSuccess(msgTodoUpdated)
	response.SeeOther(c, listPath(uri.ListIndex))
}

// scope returns the request's session and the scope derived from it.
// It writes a 500 and returns false when no session middleware ran.
func (h *handler) scope(c *gin.Context) (model.Scope, *session.Session, bool) {
	sess, err := session.FromContext(c.Request.Context())
	if err != nil {
		h.l.Errorf(c.Request.Context(), "todolist.delivery.http.scope: %v", err)
		response.InternalError(c, err)
		return model.Scope{}, nil, false
	}
	return model.Scope{SessionID: sess.ID}, sess, true
}

// render writes an HTML page and consumes the session's flash messages.
func (h *handler) render(c *gin.Context, sess *session.Session, status int, name string, p page) {
	p.setFlash(sess.PopFlash())
	c.HTML(status, name, p)
}

// fail handles errors of navigation-style requests. A missing list or todo
// sends the user back to the overview with an error flash. Anything else
// is a 500.
func (h *handler) fail(c *gin.Context, sess *session.Session, err error) {
	ctx := c.Request.Context()
	if !todolist.IsNotFound(err) {
		h.l.Errorf(ctx, "todolist.delivery.http.fail: %v", err)
		response.InternalError(c, err)
		return
	}

	h.l.Warnf(ctx, "todolist.delivery.http.fail: %v", err)
	sess.SetError(h.mapError(err).Message)
	c.Redirect(redirectStatus(c), listsPath)
}

func redirectStatus(c *gin.Context) int {
	if c.Request.Method == http.MethodGet {
		return http.StatusFound
	}
	return http.StatusSeeOther
}

func listPath(index int) string {
	return fmt.Sprintf("%s/%d", listsPath, index)
}
