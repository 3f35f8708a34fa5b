package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrRequestBodyInvalid = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
)

// RequestHost returns the host part for links to resources.
//
// The scheme defaults to http and is upgraded to https
// if the x-forwarded-proto header says so.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	if xForwardedHost := c.Request.Header.Get("x-forwarded-host"); xForwardedHost != "" {
		host = xForwardedHost
	}

	return scheme + "://" + host
}

// BindData binds the JSON body of the request to the struct passed in data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrRequestBodyInvalid
	}

	return nil
}
