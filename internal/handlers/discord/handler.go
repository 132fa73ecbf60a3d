package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/clients/roller"
	"github.com/archaosrpg/archaos-bot/internal/config"
	characterHandler "github.com/archaosrpg/archaos-bot/internal/handlers/discord/character"
	diceHandler "github.com/archaosrpg/archaos-bot/internal/handlers/discord/dice"
	mastersHandler "github.com/archaosrpg/archaos-bot/internal/handlers/discord/masters"
	"github.com/archaosrpg/archaos-bot/internal/services"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// Handler routes Discord interactions to the feature handlers
type Handler struct {
	characterService characterService.Service

	createHandler      *characterHandler.CreateHandler
	raceSelectHandler  *characterHandler.RaceSelectHandler
	classSelectHandler *characterHandler.ClassSelectHandler
	attributesHandler  *characterHandler.AttributesHandler
	sheetHandler       *characterHandler.SheetHandler
	editHandler        *characterHandler.EditHandler
	deleteHandler      *characterHandler.DeleteHandler
	avatarHandler      *characterHandler.AvatarHandler
	rollHandler        *diceHandler.RollHandler
	mastersHandler     *mastersHandler.Handler
}

// HandlerConfig holds configuration for the root handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Roller          roller.Client
	Emojis          config.Emojis
}

// NewHandler creates a new root handler
func NewHandler(cfg *HandlerConfig) *Handler {
	charSvc := cfg.ServiceProvider.CharacterService

	return &Handler{
		characterService: charSvc,
		createHandler: characterHandler.NewCreateHandler(&characterHandler.CreateHandlerConfig{
			CharacterService: charSvc,
		}),
		raceSelectHandler: characterHandler.NewRaceSelectHandler(&characterHandler.RaceSelectHandlerConfig{
			CharacterService: charSvc,
		}),
		classSelectHandler: characterHandler.NewClassSelectHandler(&characterHandler.ClassSelectHandlerConfig{
			CharacterService: charSvc,
		}),
		attributesHandler: characterHandler.NewAttributesHandler(&characterHandler.AttributesHandlerConfig{
			CharacterService: charSvc,
		}),
		sheetHandler: characterHandler.NewSheetHandler(&characterHandler.SheetHandlerConfig{
			CharacterService: charSvc,
			Emojis:           cfg.Emojis,
		}),
		editHandler: characterHandler.NewEditHandler(&characterHandler.EditHandlerConfig{
			CharacterService: charSvc,
			Emojis:           cfg.Emojis,
		}),
		deleteHandler: characterHandler.NewDeleteHandler(&characterHandler.DeleteHandlerConfig{
			CharacterService: charSvc,
		}),
		avatarHandler: characterHandler.NewAvatarHandler(&characterHandler.AvatarHandlerConfig{
			CharacterService: charSvc,
		}),
		rollHandler: diceHandler.NewRollHandler(&diceHandler.RollHandlerConfig{
			Roller: cfg.Roller,
		}),
		mastersHandler: mastersHandler.NewHandler(&mastersHandler.HandlerConfig{
			MasterService: cfg.ServiceProvider.MasterService,
		}),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	adminPerm := int64(discordgo.PermissionAdministrator)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "create",
			Description: "Create a new character",
		},
		{
			Name:        "sheet",
			Description: "Show a character sheet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Whose sheet to show (masters only)",
					Required:    false,
				},
			},
		},
		{
			Name:        "delete",
			Description: "Delete your character",
		},
		{
			Name:        "avatar",
			Description: "Set your character's portrait",
		},
		{
			Name:        "roll",
			Description: "Roll dice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "expression",
					Description: "Dice expression, e.g. 2d6+3",
					Required:    true,
				},
			},
		},
		{
			Name:                     "master",
			Description:              "Manage the master registry",
			DefaultMemberPermissions: &adminPerm,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Grant master status",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User to promote",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Revoke master status",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User to demote",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List registered masters",
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

// HandleInteraction dispatches slash commands, component clicks, and
// modal submissions.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		err = h.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		err = h.handleModal(s, i)
	}

	if err != nil {
		log.Printf("Error handling interaction: %v", err)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "create":
		return h.createHandler.Handle(s, i)
	case "sheet":
		return h.sheetHandler.Handle(s, i)
	case "delete":
		return h.deleteHandler.Handle(s, i)
	case "avatar":
		return h.avatarHandler.HandleOpen(s, i)
	case "roll":
		return h.rollHandler.Handle(s, i)
	case "master":
		if len(data.Options) == 0 {
			return nil
		}
		switch data.Options[0].Name {
		case "add":
			return h.mastersHandler.HandleAdd(s, i)
		case "remove":
			return h.mastersHandler.HandleRemove(s, i)
		case "list":
			return h.mastersHandler.HandleList(s, i)
		}
	}
	return nil
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 2 || parts[0] != "character" {
		return nil
	}

	switch parts[1] {
	case "race_select":
		if len(parts) == 3 {
			return h.raceSelectHandler.Handle(s, i, parts[2])
		}
	case "class_select":
		if len(parts) == 3 {
			return h.classSelectHandler.Handle(s, i, parts[2])
		}
	case "attribs_open":
		if len(parts) == 3 {
			return h.attributesHandler.HandleOpen(s, i, parts[2])
		}
	case "attribs_skip":
		if len(parts) == 3 {
			return h.attributesHandler.HandleSkip(s, i, parts[2])
		}
	case "edit_menu":
		return h.editHandler.HandleMenu(s, i)
	case "edit_back":
		return h.editHandler.HandleBack(s, i)
	case "edit_field":
		return h.editHandler.HandleFieldSelect(s, i)
	}
	return nil
}

func (h *Handler) handleModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	parts := strings.Split(i.ModalSubmitData().CustomID, ":")
	if len(parts) < 2 || parts[0] != "character" {
		return nil
	}

	switch parts[1] {
	case "attribs_submit":
		return h.attributesHandler.HandleSubmit(s, i)
	case "edit_submit":
		if len(parts) == 3 {
			return h.editHandler.HandleSubmit(s, i, parts[2])
		}
	case "avatar_submit":
		return h.avatarHandler.HandleSubmit(s, i)
	}
	return nil
}

// HandleMessageCreate routes free-text messages to a wizard waiting on
// its name reply. All other messages are ignored.
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	wizard, ok := h.characterService.PendingWizard(m.Author.ID, m.ChannelID)
	if !ok || wizard.Step != characterService.StepName {
		return
	}

	if err := h.createHandler.HandleNameReply(s, m); err != nil {
		log.Printf("Error handling name reply: %v", err)
	}
}
