package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nmeilick/juration/format"
	"github.com/nmeilick/juration/parse"
	"github.com/nmeilick/juration/response"
	"github.com/nmeilick/juration/units"
)

// handleParse converts the text query parameter to seconds
func (s *Server) handleParse(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		ErrorHandler(c, http.StatusBadRequest, "missing text parameter")
		return
	}

	secs, err := parse.Parse(text)
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			s.logger.Debug().Str("text", text).Str("token", perr.Token).Msg("Parse failed")
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, response.NewParse(text, secs))
}

// handleStringify renders the seconds query parameter
func (s *Server) handleStringify(c *gin.Context) {
	raw := c.Query("seconds")
	if raw == "" {
		ErrorHandler(c, http.StatusBadRequest, "missing seconds parameter")
		return
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "invalid seconds parameter: "+raw)
		return
	}

	opts := &format.Options{
		Format: units.Format(strings.ToLower(c.Query("format"))),
	}
	if v := c.Query("units"); v != "" {
		if opts.UnitCount, err = strconv.Atoi(v); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "invalid units parameter: "+v)
			return
		}
	}
	if v := c.Query("weeks"); v != "" {
		if opts.Weeks, err = strconv.ParseBool(v); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "invalid weeks parameter: "+v)
			return
		}
	}

	text, err := format.Stringify(secs, opts)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	f := opts.Format
	if f == "" {
		f = units.DefaultFormat
	}
	c.JSON(http.StatusOK, response.StringifyResponse{
		Seconds: secs,
		Format:  string(f),
		Text:    text,
	})
}

// handleUnits lists the unit table
func (s *Server) handleUnits(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewUnits())
}
