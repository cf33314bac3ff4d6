package web

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/danmuck/kvadmin/internal/console"
	"github.com/danmuck/kvadmin/internal/observability"
	"github.com/gin-gonic/gin"
)

const (
	msgEmptyCommand = "CLI: Empty command."
	msgParseFailed  = "CLI: Failed to parse command."
	msgNotAllowed   = "CLI: Command is not allowed."
)

func (s *Server) handleConsolePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"name": s.cfg.Name,
		"path": s.cfg.BasePath,
	})
}

// handleConsoleSubmit is the single recovery boundary: every failure
// from the tokenizer, resolver, hooks, or the operation itself becomes
// a rendered error fragment.
func (s *Server) handleConsoleSubmit(c *gin.Context) {
	start := time.Now()

	line := c.PostForm("cmd")
	if line == "" {
		observability.RecordConsoleCommand(s.cfg.Name, "", "empty", time.Since(start))
		s.renderError(c, msgEmptyCommand)
		return
	}

	tokens, err := console.Tokenize(line)
	if err != nil {
		observability.RecordConsoleCommand(s.cfg.Name, "", "parse_error", time.Since(start))
		s.renderError(c, "CLI: "+err.Error())
		return
	}
	if len(tokens) == 0 {
		observability.RecordConsoleCommand(s.cfg.Name, "", "parse_error", time.Since(start))
		s.renderError(c, msgParseFailed)
		return
	}

	name, args := tokens[0], tokens[1:]
	result, err := s.console.Execute(c.Request.Context(), name, args)
	if err != nil {
		observability.RecordConsoleCommand(s.cfg.Name, name, outcomeLabel(err), time.Since(start))
		if errors.Is(err, console.ErrDenied) {
			s.renderError(c, msgNotAllowed)
			return
		}
		s.renderError(c, "CLI: "+err.Error())
		return
	}

	observability.RecordConsoleCommand(s.cfg.Name, name, "ok", time.Since(start))
	c.HTML(http.StatusOK, "response.html", displayContext(result))
}

func (s *Server) renderError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "error.html", gin.H{"error": msg})
}

func outcomeLabel(err error) string {
	var opErr *console.OperationError
	switch {
	case errors.Is(err, console.ErrDenied):
		return "denied"
	case errors.As(err, &opErr):
		return "operation_error"
	case errors.Is(err, console.ErrUnknownCommand):
		return "unknown_command"
	default:
		return "error"
	}
}

type pair struct {
	Key   string
	Value string
}

// displayContext flattens a Result into the response template context.
// The switch is exhaustive over the six kinds; set members and mapping
// pairs are sorted so identical results render identically.
func displayContext(r console.Result) gin.H {
	ctx := gin.H{"type_name": r.TypeName()}
	switch r.Kind {
	case console.KindSequence:
		ctx["items"] = r.Seq
	case console.KindSet:
		members := append([]string(nil), r.Members...)
		sort.Strings(members)
		ctx["items"] = members
	case console.KindBool:
		ctx["text"] = strconv.FormatBool(r.Bool)
	case console.KindText:
		ctx["text"] = r.Text
	case console.KindBytes:
		ctx["text"] = fmt.Sprintf("%q", r.Bytes)
	case console.KindMapping:
		keys := make([]string, 0, len(r.Mapping))
		for key := range r.Mapping {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]pair, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, pair{Key: key, Value: r.Mapping[key]})
		}
		ctx["pairs"] = pairs
	}
	return ctx
}
