package main

import (
	"fmt"
	"os"

	"lrucache/internal/cache"
	"lrucache/internal/config"
	"lrucache/pkg/logger"
)

func main() {
	// Load config
	conf := config.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := config.FromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		conf = loaded
	}

	// Init logger
	logger.InitLogger(conf.LogLevel, conf.LogFile)
	defer logger.Sync()

	// Build the cache
	c, err := cache.NewShardedWithEvict[string](conf.CacheSize, conf.Shards, func(key string, value string) {
		logger.Debug("entry evicted", "key", key)
	})
	if err != nil {
		logger.Fatal("failed to build cache", "error", err)
	}
	logger.Info("cache ready", "capacity", c.Cap(), "shards", c.ShardCount())

	// Churn through twice the capacity while keeping one key hot
	hot := "session:hot"
	c.Put(hot, "pinned")
	for i := 0; i < c.Cap()*2; i++ {
		c.Put(fmt.Sprintf("session:%d", i), fmt.Sprintf("payload-%d", i))
		c.Get(hot)
	}

	if _, ok := c.Get(hot); ok {
		logger.Info("hot key survived the churn", "key", hot)
	} else {
		logger.Warn("hot key was evicted", "key", hot)
	}

	st := c.Stats()
	logger.Info("workload done",
		"len", c.Len(),
		"capacity", c.Cap(),
		"hits", st.Hits,
		"misses", st.Misses,
		"evictions", st.Evictions,
	)
}
