package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskrelay"
	"diskrelay/internal/infrastructure/ethereum"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, diskrelay.StringVersion(), strings.TrimSpace(out.String()))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"run", "deploy", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestPrintDeploymentStopsAtStage(t *testing.T) {
	dep := &ethereum.Deployment{
		Stage:    ethereum.StageRegistryDeployed,
		Registry: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
	}

	out := new(bytes.Buffer)
	printDeployment(out, dep)

	assert.Contains(t, out.String(), "DiskRegistry: "+dep.Registry.Hex())
	assert.NotContains(t, out.String(), "DiskMarketplace")
	assert.NotContains(t, out.String(), "FileRegistry")
}
