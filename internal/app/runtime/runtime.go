// Package runtime assembles the bot: configuration, the Discord
// session, the command catalog, the dispatcher and the background
// loops. Everything is constructed here and threaded through
// explicitly; nothing reaches for globals.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"guildBot/internal/app/events"
	"guildBot/internal/domain"
	"guildBot/internal/infrastructure/config"
	"guildBot/internal/infrastructure/gameserver"
	"guildBot/internal/infrastructure/health"
	"guildBot/internal/infrastructure/hosting"
	discordinfra "guildBot/internal/infrastructure/platform/discord"
	discordadapter "guildBot/internal/interface/adapters/discord"
	"guildBot/internal/usecase/announce"
	"guildBot/internal/usecase/commands"
	"guildBot/internal/usecase/dispatch"
	"guildBot/internal/usecase/notifications"
	"guildBot/internal/usecase/tags"
	"guildBot/internal/usecase/watch"
)

type Options struct{}

type Runtime struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     *config.Config
	adapter *discordadapter.Adapter
	bus     *events.Bus
	wg      sync.WaitGroup
	started bool
}

func Start(ctx context.Context, _ Options) (*Runtime, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runtimeCtx, cancel := context.WithCancel(ctx)

	cfg, err := config.Load()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.DiscordToken == "" {
		cancel()
		return nil, errors.New("DISCORD_TOKEN is required")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.ShouldRetryOnRateLimit = true

	platform := discordinfra.NewService(session)
	registry := tags.NewRegistry(tags.DefaultGroups())
	engine := tags.NewEngine(platform)
	bus := events.NewBus()

	var hostingSvc *hosting.Client
	if cfg.AternosUser != "" && cfg.AternosPass != "" {
		hostingSvc, err = hosting.NewClient(cfg.AternosUser, cfg.AternosPass)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("hosting client: %w", err)
		}
	}

	router := commands.NewRouter(cfg.CommandPrefix)
	router.Register(commands.NewRulesCommand())
	router.Register(commands.NewRankSelectorCommand(registry))
	router.Register(commands.NewRegionSelectorCommand(registry))
	router.Register(commands.NewAgeSelectorCommand(registry))
	router.Register(commands.NewPronounSelectorCommand(registry))
	router.Register(commands.NewDailyPingSelectorCommand(registry))
	router.Register(commands.NewLivePingSelectorCommand(registry))
	// A nil *hosting.Client must stay a nil interface inside the command.
	var hostingPort domain.HostingService
	if hostingSvc != nil {
		hostingPort = hostingSvc
	}
	router.Register(commands.NewStartServerCommand(hostingPort, cfg.StartCooldown))

	dispatcher := dispatch.New(registry, engine, router, platform, platform, bus)

	adapter := discordadapter.NewAdapter(session, discordadapter.Config{
		GuildID:      cfg.GuildID,
		PresenceName: cfg.PresenceName,
		PresenceURL:  cfg.PresenceURL,
		Catalog:      commands.BuiltinCommandCatalog(),
	})
	adapter.SetHandlers(dispatcher.HandleInteraction, dispatcher.HandleMessage)

	healthSrv := health.NewServer("0.0.0.0:" + cfg.Port)
	if err := healthSrv.Start(runtimeCtx); err != nil {
		cancel()
		return nil, err
	}

	if err := adapter.Open(runtimeCtx); err != nil {
		cancel()
		return nil, err
	}

	run := &Runtime{
		ctx:     runtimeCtx,
		cancel:  cancel,
		cfg:     cfg,
		adapter: adapter,
		bus:     bus,
	}

	logger := notifications.NewEventLogger(bus)
	run.wg.Add(1)
	go func() {
		defer run.wg.Done()
		logger.Run(runtimeCtx)
	}()

	if cfg.AnnounceChannelID != "" {
		loop := announce.NewLoop(announce.Config{
			GuildID:    cfg.GuildID,
			ChannelID:  cfg.AnnounceChannelID,
			MentionTag: tags.DailyPingTag,
			Interval:   cfg.AnnounceInterval,
		}, platform, platform, bus)
		run.wg.Add(1)
		go func() {
			defer run.wg.Done()
			loop.Run(runtimeCtx)
		}()
	} else {
		log.Println("runtime: ANNOUNCE_CHANNEL_ID not set, daily announcement disabled")
	}

	if cfg.StatusChannelID != "" && cfg.ServerHost != "" {
		poller := watch.NewPoller(watch.Config{
			GuildID:    cfg.GuildID,
			ChannelID:  cfg.StatusChannelID,
			MentionTag: tags.LivePingTag,
			Interval:   cfg.PollInterval,
		}, gameserver.NewClient(cfg.ServerHost), platform, platform, bus)
		run.wg.Add(1)
		go func() {
			defer run.wg.Done()
			poller.Run(runtimeCtx)
		}()
	} else {
		log.Println("runtime: status watcher disabled")
	}

	run.started = true
	log.Println("runtime: bot started")
	return run, nil
}

// Stop cancels the background loops, waits for them to drain and
// closes the gateway connection.
func (r *Runtime) Stop() error {
	if r == nil || !r.started {
		return nil
	}
	r.cancel()
	r.wg.Wait()
	if err := r.adapter.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	r.started = false
	log.Println("runtime: bot stopped")
	return nil
}

// Bus exposes the event bus, mainly for tooling and tests.
func (r *Runtime) Bus() *events.Bus {
	if r == nil {
		return nil
	}
	return r.bus
}
