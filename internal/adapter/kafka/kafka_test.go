package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NonGT/ddpm-tools/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	date := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	doc := &domain.SummaryDocument{
		Type: domain.ScoringIntegration,
		Date: date,
		Provinces: []*domain.Province{
			{Info: domain.ProvinceInfo{ProvinceCode: "50", Name: "เชียงใหม่"}},
		},
		RiskScoreLegends: domain.RiskScoreLegends(),
	}

	msg, err := serializeToMessage("summary", doc)
	require.NoError(t, err)

	assert.Equal(t, []byte("summary"), msg.Key)
	assert.Contains(t, string(msg.Value), `"type":"integration"`)
	assert.Contains(t, string(msg.Value), `"provinceCode":"50"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "doc_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("integration"), msg.Headers[0].Value)
	assert.Equal(t, "generated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(date.Format(time.RFC3339)), msg.Headers[1].Value)
}
