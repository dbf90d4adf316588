package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/andy/billfold/internal/config"
	"github.com/andy/billfold/internal/crypto"
	"github.com/andy/billfold/internal/db"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/prefs"
	"github.com/andy/billfold/internal/render"
	"github.com/andy/billfold/internal/repository"
	"github.com/andy/billfold/internal/service"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *db.DB

	// Repositories
	ClientRepo  repository.ClientRepository
	CatalogRepo repository.CatalogRepository
	InvoiceRepo repository.InvoiceRepository

	// Stores and services
	Prefs          *prefs.Store
	InvoiceService service.InvoiceService
	Renderer       *render.Renderer
}

// New creates a new App instance, initializing all dependencies:
// config, encryption key, database + migrations, repositories, services,
// and the document renderer. An empty catalog is seeded with the default
// billable items on first run.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Get keyring for secure password storage
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create repositories
	clientRepo := repository.NewClientRepo(database)
	catalogRepo := repository.NewCatalogRepo(database)
	invoiceRepo := repository.NewInvoiceRepo(database)

	if err := seedCatalog(ctx, catalogRepo); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	invoiceService := service.NewInvoiceService(invoiceRepo, catalogRepo, clientRepo)

	renderer, err := newRenderer(cfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &App{
		Config:         cfg,
		DB:             database,
		ClientRepo:     clientRepo,
		CatalogRepo:    catalogRepo,
		InvoiceRepo:    invoiceRepo,
		Prefs:          prefs.NewStore(cfg.Preferences.Path),
		InvoiceService: invoiceService,
		Renderer:       renderer,
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// WriteDocument writes a rendered invoice document into the configured
// output directory and returns the full path
func (a *App) WriteDocument(doc *render.Document) (string, error) {
	path := filepath.Join(a.Config.Invoice.OutputDir, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.HTML), 0644); err != nil {
		return "", fmt.Errorf("failed to write invoice document: %w", err)
	}
	return path, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// newRenderer loads the configured template, falling back to the built-in one
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	if cfg.Invoice.TemplatePath == "" {
		return render.New(render.DefaultTemplate()), nil
	}

	data, err := os.ReadFile(cfg.Invoice.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice template: %w", err)
	}

	return render.New(string(data)), nil
}

// seedCatalog inserts the default billable items when the catalog is empty
func seedCatalog(ctx context.Context, catalogRepo repository.CatalogRepository) error {
	items, err := catalogRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}

	for _, item := range domain.DefaultCatalog() {
		if err := catalogRepo.Create(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your invoicing data will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
