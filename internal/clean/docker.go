package clean

import (
	"context"
	"log/slog"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
)

// dockerTimeout bounds the whole prune pass; build cache pruning on a busy
// engine can take a while.
const dockerTimeout = 180 * time.Second

// PruneDockerEngine reclaims stopped containers, dangling images and unused
// build cache through the engine API. The engine's data directory lives
// outside the designated root, so the API is the only way this tool touches
// it. An unreachable daemon is a quiet no-op — not every workstation runs
// one. The returned bool reports whether the byte figure is meaningful.
func PruneDockerEngine(dryRun bool, errs *core.ErrorLog) (int64, bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		slog.Debug("docker client unavailable", "err", err)
		return 0, false, nil
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), dockerTimeout)
	defer cancel()

	if _, err := cli.Ping(ctx); err != nil {
		slog.Debug("docker daemon unreachable", "err", err)
		return 0, false, nil
	}

	if dryRun {
		du, err := cli.DiskUsage(ctx, types.DiskUsageOptions{})
		if err != nil {
			errs.Append("docker disk usage: %v", err)
			return 0, false, err
		}
		return reclaimableBytes(du), true, nil
	}

	// Prune passes are independent; one failing does not stop the others.
	var freed uint64
	if rep, err := cli.ContainersPrune(ctx, filters.NewArgs()); err != nil {
		errs.Append("docker container prune: %v", err)
	} else {
		freed += rep.SpaceReclaimed
	}
	if rep, err := cli.ImagesPrune(ctx, filters.NewArgs(filters.Arg("dangling", "true"))); err != nil {
		errs.Append("docker image prune: %v", err)
	} else {
		freed += rep.SpaceReclaimed
	}
	if rep, err := cli.BuildCachePrune(ctx, types.BuildCachePruneOptions{}); err != nil {
		errs.Append("docker build cache prune: %v", err)
	} else if rep != nil {
		freed += rep.SpaceReclaimed
	}

	return int64(freed), true, nil
}

// reclaimableBytes estimates what a prune pass would free: writable layers
// of stopped containers, untagged images nothing references, and build cache
// records not currently in use.
func reclaimableBytes(du types.DiskUsage) int64 {
	var total int64
	for _, c := range du.Containers {
		if c.State != "running" {
			total += c.SizeRw
		}
	}
	for _, img := range du.Images {
		if img.Containers == 0 && len(img.RepoTags) == 0 {
			total += img.Size
		}
	}
	for _, bc := range du.BuildCache {
		if !bc.InUse {
			total += bc.Size
		}
	}
	return total
}
