// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/platform/apperr"
)

/*
TestSolrURL resolves the endpoint from the argument or the environment.
*/
func TestSolrURL(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "missing", wantErr: true},
		{name: "blank argument", args: []string{"  "}, fallback: "http://solr:8983/solr/biblio/update", wantErr: true},
		{name: "not http", args: []string{"ftp://solr/update"}, wantErr: true},
		{name: "argument wins", args: []string{"http://a:8983/solr/biblio/update"}, fallback: "http://b:8983/solr/biblio/update", want: "http://a:8983/solr/biblio/update"},
		{name: "environment fallback", fallback: "https://solr.example.org/solr/biblio/update", want: "https://solr.example.org/solr/biblio/update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solrURL(tt.args, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestRunCommands_MissingSolrURL fails before any connection is opened. The
database address is unreachable, so a connection attempt would surface as a
different error.
*/
func TestRunCommands_MissingSolrURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://vubib@127.0.0.1:1/vubib?connect_timeout=1")
	t.Setenv("SOLR_UPDATE_URL", "")
	t.Setenv("REDIS_URL", "")

	t.Run("index", func(t *testing.T) {
		err := runIndex(indexCmd, nil)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeValidation), err.Error())
	})

	t.Run("delete", func(t *testing.T) {
		err := runDelete(deleteCmd, nil)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeValidation), err.Error())
	})
}
