package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"timetable-server/db"
	"timetable-server/models"
)

// TIMETABLE_DUMP_KEY_FORMAT is used to store the last built timetable per group.
const TIMETABLE_DUMP_KEY_FORMAT = "timetable_dump_v1:%s"

// ErrDumpNotFound is returned when no dump was stored for a group.
var ErrDumpNotFound = errors.New("timetable dump not found")

// RedisTimetableDAO stores timetable debug dumps in Redis.
type RedisTimetableDAO struct {
	client db.RedisClient
}

// NewRedisTimetableDAO initializes a RedisTimetableDAO with the Redis client.
func NewRedisTimetableDAO(client db.RedisClient) *RedisTimetableDAO {
	return &RedisTimetableDAO{client: client}
}

// SaveDump stores the timetable as JSON, replacing the previous dump of the group.
func (dao *RedisTimetableDAO) SaveDump(t *models.Timetable) error {
	key := fmt.Sprintf(TIMETABLE_DUMP_KEY_FORMAT, t.GroupID)
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal timetable dump for group %s: %w", t.GroupID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set timetable dump in redis: %w", err)
	}
	return nil
}

// GetDump retrieves the last stored timetable of a group.
func (dao *RedisTimetableDAO) GetDump(groupID string) (*models.Timetable, error) {
	key := fmt.Sprintf(TIMETABLE_DUMP_KEY_FORMAT, groupID)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: group %s", ErrDumpNotFound, groupID)
		}
		return nil, fmt.Errorf("failed to get timetable dump from redis: %w", err)
	}
	var t models.Timetable
	if err := json.Unmarshal([]byte(str), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timetable dump JSON: %w", err)
	}
	return &t, nil
}

// ListDumpedGroupIDs returns the group IDs that have a stored dump.
func (dao *RedisTimetableDAO) ListDumpedGroupIDs() ([]string, error) {
	pattern := fmt.Sprintf(TIMETABLE_DUMP_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list timetable dump keys: %w", err)
	}

	prefix := fmt.Sprintf(TIMETABLE_DUMP_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteDump removes the stored dump of a group.
func (dao *RedisTimetableDAO) DeleteDump(groupID string) error {
	key := fmt.Sprintf(TIMETABLE_DUMP_KEY_FORMAT, groupID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete timetable dump key %s: %w", key, err)
	}
	log.Printf("[RedisTimetableDAO] Deleted timetable dump for %s", groupID)
	return nil
}
