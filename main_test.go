package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/consts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testRoutes() gin.RoutesInfo {
	return gin.RoutesInfo{
		{Method: "GET", Path: "/ping", Handler: "main.ping"},
		{Method: "POST", Path: "/api/images/", Handler: "handler.UploadImage-fm"},
	}
}

func TestExportRoutes_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportRoutes(&buf, testRoutes(), "json"))

	var got []routeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "/api/images/", got[1].Path)
}

func TestExportRoutes_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportRoutes(&buf, testRoutes(), "yaml"))

	var got []routeInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "GET", got[0].Method)
}

func TestExportRoutes_UnknownFormat(t *testing.T) {
	assert.Error(t, exportRoutes(&bytes.Buffer{}, testRoutes(), "xml"))
}

func TestPrintWelcomeMessage(t *testing.T) {
	var buf bytes.Buffer
	printWelcomeMessage(&buf, config.Config{Server: config.ServerConfig{Port: "8000", Mode: "debug"}})
	out := buf.String()
	assert.True(t, strings.Contains(out, consts.ApplicationName))
	assert.Contains(t, out, "8000")
}
