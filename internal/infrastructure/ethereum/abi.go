package ethereum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain/entity"
)

// Artifact is a compiled contract: its interface and its creation bytecode.
// Bytecode is empty when the file only carried an ABI.
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

type artifactFile struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

// LoadArtifact reads <dir>/<name>.json. Both a bare ABI array and a build
// artifact object ({"abi": [...], "bytecode": "0x..."}) are accepted.
func LoadArtifact(dir string, name entity.ContractName) (Artifact, error) {
	data, err := os.ReadFile(filepath.Join(dir, string(name)+".json"))
	if err != nil {
		return Artifact{}, err
	}

	return ParseArtifact(data)
}

func ParseArtifact(data []byte) (Artifact, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Artifact{}, errors.New("empty artifact")
	}

	if data[0] == '[' {
		parsed, err := abi.JSON(bytes.NewReader(data))
		if err != nil {
			return Artifact{}, fmt.Errorf("parse abi: %w", err)
		}

		return Artifact{ABI: parsed}, nil
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Artifact{}, fmt.Errorf("parse artifact: %w", err)
	}
	if len(file.ABI) == 0 {
		return Artifact{}, errors.New("artifact has no abi")
	}

	parsed, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return Artifact{}, fmt.Errorf("parse abi: %w", err)
	}

	return Artifact{
		ABI:      parsed,
		Bytecode: common.FromHex(file.Bytecode),
	}, nil
}
