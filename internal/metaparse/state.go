package metaparse

import (
	"strconv"

	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// applyState mutates meta.RenderState per one `state <Sub> <args...>`
// directive (spec §4.1). Every recognised sub-directive sets
// RenderState.Explicit.
func applyState(meta *ParsedMetadata, rest []string, line int) error {
	if len(rest) == 0 {
		return vserr.AtLine(line, "state: missing sub-directive")
	}
	sub := rest[0]
	args := rest[1:]
	rs := &meta.RenderState

	switch sub {
	case "Blend":
		if len(args) != 2 {
			return vserr.AtLine(line, "state Blend: expected <Src> <Dst>")
		}
		src, ok := vstypes.BlendFactorFromName(args[0])
		if !ok {
			return vserr.AtLine(line, "state Blend: unknown factor %q", args[0])
		}
		dst, ok := vstypes.BlendFactorFromName(args[1])
		if !ok {
			return vserr.AtLine(line, "state Blend: unknown factor %q", args[1])
		}
		rs.BlendEnable = true
		rs.SrcColor, rs.DstColor = src, dst
		rs.SrcAlpha, rs.DstAlpha = src, dst

	case "BlendOp":
		if len(args) != 2 {
			return vserr.AtLine(line, "state BlendOp: expected <ColorOp> <AlphaOp>")
		}
		colorOp, ok := vstypes.BlendOpFromName(args[0])
		if !ok {
			return vserr.AtLine(line, "state BlendOp: unknown op %q", args[0])
		}
		alphaOp, ok := vstypes.BlendOpFromName(args[1])
		if !ok {
			return vserr.AtLine(line, "state BlendOp: unknown op %q", args[1])
		}
		rs.ColorOp, rs.AlphaOp = colorOp, alphaOp

	case "ZTest":
		on, err := parseOnOff(args, line, "ZTest")
		if err != nil {
			return err
		}
		rs.DepthTest = on

	case "ZWrite":
		on, err := parseOnOff(args, line, "ZWrite")
		if err != nil {
			return err
		}
		rs.DepthWrite = on

	case "CompareOp":
		if len(args) != 1 {
			return vserr.AtLine(line, "state CompareOp: expected one operator")
		}
		op, ok := vstypes.CompareOpFromName(args[0])
		if !ok {
			return vserr.AtLine(line, "state CompareOp: unknown operator %q", args[0])
		}
		rs.DepthFunc = op

	case "Cull":
		if len(args) != 1 {
			return vserr.AtLine(line, "state Cull: expected one mode")
		}
		mode, ok := vstypes.CullModeFromName(args[0])
		if !ok {
			return vserr.AtLine(line, "state Cull: unknown mode %q", args[0])
		}
		rs.Cull = mode

	case "AlphaToCoverage":
		on, err := parseOnOff(args, line, "AlphaToCoverage")
		if err != nil {
			return err
		}
		rs.AlphaToCoverage = on

	case "ColorMask":
		if len(args) != 1 {
			return vserr.AtLine(line, "state ColorMask: expected a mask of RGBA letters")
		}
		mask, ok := vstypes.ColorMaskFromLetters(args[0])
		if !ok {
			return vserr.AtLine(line, "state ColorMask: invalid mask %q", args[0])
		}
		rs.ColorMask = mask

	case "DepthBias":
		if len(args) != 2 {
			return vserr.AtLine(line, "state DepthBias: expected <factor> <units>")
		}
		factor, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return vserr.AtLine(line, "state DepthBias: factor %q is not numeric", args[0])
		}
		units, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return vserr.AtLine(line, "state DepthBias: units %q is not numeric", args[1])
		}
		rs.DepthBiasFactor = float32(factor)
		rs.DepthBiasUnits = float32(units)

	default:
		return vserr.AtLine(line, "state: unknown sub-directive %q", sub)
	}

	rs.Explicit = true
	return nil
}

func parseOnOff(args []string, line int, sub string) (bool, error) {
	if len(args) != 1 {
		return false, vserr.AtLine(line, "state %s: expected On or Off", sub)
	}
	switch args[0] {
	case "On":
		return true, nil
	case "Off":
		return false, nil
	default:
		return false, vserr.AtLine(line, "state %s: expected On or Off, got %q", sub, args[0])
	}
}
