package ethereum_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskrelay/internal/domain/entity"
	"diskrelay/internal/infrastructure/ethereum"
)

const (
	registryABI = `[{"type":"function","name":"setProviderApproval","stateMutability":"nonpayable",
		"inputs":[{"name":"provider","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]}]`
	fileRegistryABI = `[{"type":"function","name":"setRentalRoles","stateMutability":"nonpayable",
		"inputs":[{"name":"rentalId","type":"uint256"},{"name":"renter","type":"address"},
		{"name":"provider","type":"address"}],"outputs":[]}]`
	marketplaceABI = `[{"type":"constructor","stateMutability":"nonpayable",
		"inputs":[{"name":"registry","type":"address"}]},
		{"type":"function","name":"setFileRegistry","stateMutability":"nonpayable",
		"inputs":[{"name":"fileRegistry","type":"address"}],"outputs":[]}]`
	fileRegistryCtorABI = `[{"type":"constructor","stateMutability":"nonpayable",
		"inputs":[{"name":"marketplace","type":"address"}]}]`

	// Creation code that deploys the one-byte runtime 0x00 (STOP) and
	// ignores appended constructor arguments.
	stopContract = "0x6001600c60003960016000f300"
	// Creation code that reverts.
	revertContract = "0x60006000fd"
)

var (
	registryAddr     = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	marketplaceAddr  = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	fileRegistryAddr = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	brokenAddr       = common.HexToAddress("0x00000000000000000000000000000000000000a4")
)

type testChain struct {
	sim    *simulated.Backend
	client simulated.Client
	signer *ethereum.Signer
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signer := ethereum.NewSignerFromKey(key)
	funds := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))

	sim := simulated.NewBackend(types.GenesisAlloc{
		signer.Address(): {Balance: funds},
		registryAddr:     {Code: []byte{0x00}},
		marketplaceAddr:  {Code: []byte{0x00}},
		fileRegistryAddr: {Code: []byte{0x00}},
		brokenAddr:       {Code: []byte{0xfe}},
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				sim.Commit()
			}
		}
	}()

	t.Cleanup(func() {
		close(done)
		_ = sim.Close()
	})

	return &testChain{sim: sim, client: sim.Client(), signer: signer}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func abiDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, "DiskRegistry.json", registryABI)
	writeFile(t, dir, "FileRegistry.json", `{"abi":`+fileRegistryABI+`,"bytecode":"0x"}`)
	writeFile(t, dir, "DiskMarketplace.json", marketplaceABI)

	return dir
}

func testConfig(t *testing.T) ethereum.Config {
	t.Helper()

	return ethereum.Config{
		ABIDir: abiDir(t),
		Contracts: ethereum.ContractsConfig{
			DiskRegistry:    registryAddr.Hex(),
			DiskMarketplace: marketplaceAddr.Hex(),
			FileRegistry:    fileRegistryAddr.Hex(),
		},
		ConfirmTimeout: 10_000,
	}
}

func TestNewSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	hexKey := common.Bytes2Hex(crypto.FromECDSA(key))
	want := crypto.PubkeyToAddress(key.PublicKey)

	for _, in := range []string{hexKey, "0x" + hexKey, "  " + hexKey + "\n"} {
		s, err := ethereum.NewSigner(in)
		require.NoError(t, err)
		assert.Equal(t, want, s.Address())
	}

	_, err = ethereum.NewSigner("not-a-key")
	assert.Error(t, err)
}

func TestParseArtifact(t *testing.T) {
	a, err := ethereum.ParseArtifact([]byte(registryABI))
	require.NoError(t, err)
	assert.Contains(t, a.ABI.Methods, "setProviderApproval")
	assert.Empty(t, a.Bytecode)

	a, err = ethereum.ParseArtifact([]byte(`{"abi":` + marketplaceABI + `,"bytecode":"` + stopContract + `"}`))
	require.NoError(t, err)
	assert.Contains(t, a.ABI.Methods, "setFileRegistry")
	assert.Equal(t, common.FromHex(stopContract), a.Bytecode)

	_, err = ethereum.ParseArtifact([]byte(`{"bytecode":"0x00"}`))
	assert.Error(t, err)

	_, err = ethereum.ParseArtifact(nil)
	assert.Error(t, err)
}

func TestDeployerRunsAllSteps(t *testing.T) {
	chain := newTestChain(t)

	dir := t.TempDir()
	writeFile(t, dir, "DiskRegistry.json", `{"abi":[],"bytecode":"`+stopContract+`"}`)
	writeFile(t, dir, "DiskMarketplace.json", `{"abi":`+marketplaceABI+`,"bytecode":"`+stopContract+`"}`)
	writeFile(t, dir, "FileRegistry.json", `{"abi":`+fileRegistryCtorABI+`,"bytecode":"`+stopContract+`"}`)

	artifacts, err := ethereum.LoadArtifacts(dir)
	require.NoError(t, err)

	dep, err := ethereum.NewDeployer(chain.client, chain.signer, artifacts).Deploy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ethereum.StageDone, dep.Stage)
	assert.Equal(t, chain.signer.Address(), dep.Deployer)
	assert.NotEqual(t, common.Address{}, dep.Registry)
	assert.NotEqual(t, common.Address{}, dep.Marketplace)
	assert.NotEqual(t, common.Address{}, dep.FileRegistry)
	assert.NotEqual(t, common.Hash{}, dep.WiringTx)

	tx, _, err := chain.client.TransactionByHash(context.Background(), dep.WiringTx)
	require.NoError(t, err)
	require.NotNil(t, tx.To())
	assert.Equal(t, dep.Marketplace, *tx.To())

	marketplace := artifacts[entity.DiskMarketplace]
	method, err := marketplace.ABI.MethodById(tx.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "setFileRegistry", method.Name)

	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, dep.FileRegistry, args[0])
}

func TestDeployerStopsOnFailedStep(t *testing.T) {
	chain := newTestChain(t)

	dir := t.TempDir()
	writeFile(t, dir, "DiskRegistry.json", `{"abi":[],"bytecode":"`+stopContract+`"}`)
	writeFile(t, dir, "DiskMarketplace.json", `{"abi":`+marketplaceABI+`,"bytecode":"`+revertContract+`"}`)
	writeFile(t, dir, "FileRegistry.json", `{"abi":`+fileRegistryCtorABI+`,"bytecode":"`+stopContract+`"}`)

	artifacts, err := ethereum.LoadArtifacts(dir)
	require.NoError(t, err)

	dep, err := ethereum.NewDeployer(chain.client, chain.signer, artifacts).Deploy(context.Background())
	require.Error(t, err)

	assert.Equal(t, ethereum.StageRegistryDeployed, dep.Stage)
	assert.NotEqual(t, common.Address{}, dep.Registry)
	assert.Equal(t, common.Address{}, dep.Marketplace)
	assert.Equal(t, common.Address{}, dep.FileRegistry)

	nonce, err := chain.client.PendingNonceAt(context.Background(), chain.signer.Address())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)
}

func TestLoadArtifactsRequiresBytecode(t *testing.T) {
	_, err := ethereum.LoadArtifacts(abiDir(t))
	assert.Error(t, err)
}
