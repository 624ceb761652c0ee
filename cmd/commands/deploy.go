package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"diskrelay/config"
	"diskrelay/internal/infrastructure/ethereum"
	"diskrelay/pkg/logger"
)

func newDeployCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy DiskRegistry, DiskMarketplace and FileRegistry and wire them together",
		Run: func(cmd *cobra.Command, _ []string) {
			HandleDeploy(cmd, *configPath)
		},
	}
}

func HandleDeploy(cmd *cobra.Command, configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	if cfg.Chain.PrivateKey == "" {
		ExitOnError(errors.New("PRIVATE_KEY is required to deploy"))
	}

	signer, err := ethereum.NewSigner(cfg.Chain.PrivateKey)
	if err != nil {
		ExitOnError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Deploying with:", signer.Address().Hex())

	artifacts, err := ethereum.LoadArtifacts(cfg.Deploy.ArtifactsDir)
	if err != nil {
		ExitOnError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ethereum.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	dep, err := ethereum.NewDeployer(client, signer, artifacts).Deploy(ctx)
	printDeployment(out, dep)
	if err != nil {
		ExitOnError(fmt.Errorf("deployment stopped after stage %s: %w", dep.Stage, err))
	}
}

func printDeployment(out io.Writer, dep *ethereum.Deployment) {
	if dep.Stage >= ethereum.StageRegistryDeployed {
		fmt.Fprintln(out, "DiskRegistry:", dep.Registry.Hex())
	}
	if dep.Stage >= ethereum.StageMarketplaceDeployed {
		fmt.Fprintln(out, "DiskMarketplace:", dep.Marketplace.Hex())
	}
	if dep.Stage >= ethereum.StageFileRegistryDeployed {
		fmt.Fprintln(out, "FileRegistry:", dep.FileRegistry.Hex())
	}
	if dep.Stage >= ethereum.StageWired {
		fmt.Fprintln(out, "Wired marketplace to file registry in tx", dep.WiringTx.Hex())
	}
}
