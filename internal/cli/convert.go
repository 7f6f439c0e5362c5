package cli

import (
	"fmt"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"

	"github.com/viant/dateconv"
)

type convertFlags struct {
	to      string
	via     string
	pattern string
	json    bool
}

func newConvertCmd() *cobra.Command {
	var options convertFlags
	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Convert date text to a target kind",
		Example: `  dateconv convert 2014-04-26T17:24:37.123Z --to zoned_date_time --zone Europe/Paris
  dateconv convert "26/04/2014 17:24" --pattern "dd/MM/yyyy HH:mm" --to local_date_time
  dateconv convert 2014-04-26 --to local_date --via proto_timestamp --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], options)
		},
	}
	cmd.Flags().StringVar(&options.to, "to", "", "target kind (see dateconv kinds)")
	cmd.Flags().StringVar(&options.via, "via", "", "intermediate kind to convert through")
	cmd.Flags().StringVarP(&options.pattern, "pattern", "p", "", "date pattern of text, loose parsing when empty")
	cmd.Flags().BoolVar(&options.json, "json", false, "print result as JSON")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runConvert(cmd *cobra.Command, text string, options convertFlags) error {
	target, err := dateconv.ParseKind(options.to)
	if err != nil {
		return userError(err)
	}
	converter, err := newConverter(cmd)
	if err != nil {
		return err
	}
	output := &conversionOutput{Input: text, Pattern: options.pattern, Kind: target.String()}

	var result dateconv.Result
	if options.via == "" {
		result = converter.ResolveString(text, target, options.pattern)
	} else {
		via, err := dateconv.ParseKind(options.via)
		if err != nil {
			return userError(err)
		}
		output.Via = via.String()
		result = converter.ResolveString(text, via, options.pattern)
		if result.Err == nil && !result.Null() {
			result = converter.Resolve(result.Value, target)
		}
	}
	value, err := result.Unpack()
	if err != nil {
		return userError(err)
	}
	output.Lossy = result.Lossy()
	output.Null = value == nil
	if !output.Null {
		if output.Value, err = dateconv.Format(value); err != nil {
			return systemError(err)
		}
	}
	return writeConversion(cmd, output, options.json)
}

func writeConversion(cmd *cobra.Command, output *conversionOutput, asJSON bool) error {
	if asJSON {
		data, err := gojay.MarshalJSONObject(output)
		if err != nil {
			return systemError(fmt.Errorf("encode result: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if output.Null {
		fmt.Fprintln(cmd.OutOrStdout(), "null")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.Value)
	return nil
}
