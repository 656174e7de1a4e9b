package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	// 5 записей по 2 на страницу - 3 страницы.
	assert.Equal(t, int64(3), TotalPages(5, 2))
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 2, PageRequest{Page: 2, Limit: 2}.Offset())
}
