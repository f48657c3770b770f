package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// RecentReports keeps a creation-ordered ZSET of reports plus a per-report summary hash
type RecentReports interface {
	Add(ctx context.Context, summary *model.ReportSummary) error
	SetResponseCount(ctx context.Context, reportID string, count int) error
	List(ctx context.Context, limit int) ([]*model.ReportSummary, error)
}

type recentReports struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecentReports creates a new recent report index
func NewRecentReports(client *redis.Client) RecentReports {
	return &recentReports{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

const recentKey = "reports:recent"

func (c *recentReports) summaryKey(reportID string) string {
	return fmt.Sprintf("report:%s:summary", reportID)
}

func (c *recentReports) Add(ctx context.Context, summary *model.ReportSummary) error {
	key := c.summaryKey(summary.ID)
	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, recentKey, redis.Z{
		Score:  float64(summary.CreatedAt.UnixMilli()),
		Member: summary.ID,
	})
	pipe.HSet(ctx, key,
		"requesterName", summary.RequesterName,
		"responseCount", summary.ResponseCount,
		"createdAt", summary.CreatedAt.Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// SetResponseCount is a no-op for reports that are not indexed
func (c *recentReports) SetResponseCount(ctx context.Context, reportID string, count int) error {
	key := c.summaryKey(reportID)
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	return c.client.HSet(ctx, key, "responseCount", count).Err()
}

// List returns newest reports first; an empty result means the index is cold
func (c *recentReports) List(ctx context.Context, limit int) ([]*model.ReportSummary, error) {
	ids, err := c.client.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := c.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, c.summaryKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	summaries := make([]*model.ReportSummary, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// summary expired; drop the dangling index entry
			c.client.ZRem(ctx, recentKey, ids[i])
			continue
		}
		count, _ := strconv.Atoi(fields["responseCount"])
		createdAt, _ := time.Parse(time.RFC3339Nano, fields["createdAt"])
		summaries = append(summaries, &model.ReportSummary{
			ID:            ids[i],
			RequesterName: fields["requesterName"],
			ResponseCount: count,
			CreatedAt:     createdAt,
		})
	}
	return summaries, nil
}
