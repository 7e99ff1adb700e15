package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/grpcclient"
)

func newPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "ping",
		Short:         "Check daemon reachability and version",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutputFormatter(cmd)

			c, err := dialDaemon(cmd)
			if err != nil {
				return out.Error("Failed to connect to daemon", err)
			}
			defer c.Close()

			ctx, cancel := commandContext()
			defer cancel()
			version, err := c.Ping(ctx)
			if err != nil {
				return out.Error("Failed to ping daemon", err)
			}

			if out.jsonMode {
				return out.Print(map[string]interface{}{"version": version})
			}
			fmt.Printf("Daemon version: %s\n", version)
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Show playback status",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutputFormatter(cmd)

			c, err := dialDaemon(cmd)
			if err != nil {
				return out.Error("Failed to connect to daemon", err)
			}
			defer c.Close()

			ctx, cancel := commandContext()
			defer cancel()
			st, err := c.Status(ctx)
			if err != nil {
				return out.Error("Failed to fetch status", err)
			}

			if out.jsonMode {
				return out.Print(map[string]interface{}{
					"state":                  st.GetState(),
					"now_playing_title":      st.GetNowPlayingTitle(),
					"now_playing_source_url": st.GetNowPlayingSourceUrl(),
					"volume_percent":         st.GetVolumePercent(),
				})
			}

			fmt.Println("Playback status:")
			fmt.Printf("  State: %s\n", st.GetState())
			if st.GetNowPlayingTitle() != "" {
				fmt.Printf("  Now playing: %s\n", st.GetNowPlayingTitle())
				if st.GetNowPlayingSourceUrl() != "" {
					fmt.Printf("  Source: %s\n", st.GetNowPlayingSourceUrl())
				}
			}
			fmt.Printf("  Volume: %d%%\n", st.GetVolumePercent())
			return nil
		},
	}
}

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "play <title>",
		Short:         "Start playback of a track",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceURL, _ := cmd.Flags().GetString("url")
			return runPlaybackCommand(cmd, "play", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.Play(ctx, args[0], sourceURL)
			})
		},
	}
	cmd.Flags().String("url", "", "Source URL of the track")
	return cmd
}

func newPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "pause",
		Short:         "Pause playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaybackCommand(cmd, "pause", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.Pause(ctx)
			})
		},
	}
}

func newResumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "resume",
		Short:         "Resume paused playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaybackCommand(cmd, "resume", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.Resume(ctx)
			})
		},
	}
}

func newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "stop",
		Short:         "Stop playback and clear the current track",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaybackCommand(cmd, "stop", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.Stop(ctx)
			})
		},
	}
}

func newSkipCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "skip",
		Short:         "Skip the current track",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaybackCommand(cmd, "skip", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.Skip(ctx)
			})
		},
	}
}

func newVolumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "volume <percent>",
		Short:         "Set playback volume (0-200)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid volume %q: %w", args[0], err)
			}
			return runPlaybackCommand(cmd, "set volume", func(ctx context.Context, c *grpcclient.Client) (*v1.CommandResponse, error) {
				return c.SetVolume(ctx, int32(percent))
			})
		},
	}
}

func runPlaybackCommand(cmd *cobra.Command, action string, fn func(context.Context, *grpcclient.Client) (*v1.CommandResponse, error)) error {
	out := newOutputFormatter(cmd)

	c, err := dialDaemon(cmd)
	if err != nil {
		return out.Error("Failed to connect to daemon", err)
	}
	defer c.Close()

	ctx, cancel := commandContext()
	defer cancel()
	res, err := fn(ctx, c)
	if err != nil {
		return out.Error(fmt.Sprintf("Failed to %s", action), err)
	}

	return out.Success(res.GetMessage(), map[string]interface{}{
		"ok": res.GetOk(),
	})
}

func newFxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fx",
		Short:         "Show or update audio effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutputFormatter(cmd)

			c, err := dialDaemon(cmd)
			if err != nil {
				return out.Error("Failed to connect to daemon", err)
			}
			defer c.Close()

			ctx, cancel := commandContext()
			defer cancel()

			req, changed := buildFxRequest(cmd.Flags())
			var fx *v1.AudioFxResponse
			if changed {
				fx, err = c.SetAudioFx(ctx, req)
				if err != nil {
					return out.Error("Failed to update audio effects", err)
				}
			} else {
				fx, err = c.GetAudioFx(ctx)
				if err != nil {
					return out.Error("Failed to fetch audio effects", err)
				}
			}

			if out.jsonMode {
				return out.Print(map[string]interface{}{
					"pan":        fx.GetPan(),
					"width":      fx.GetWidth(),
					"swap_lr":    fx.GetSwapLr(),
					"bass_db":    fx.GetBassDb(),
					"reverb_mix": fx.GetReverbMix(),
				})
			}

			fmt.Println("Audio effects:")
			fmt.Printf("  Pan: %.2f\n", fx.GetPan())
			fmt.Printf("  Width: %.2f\n", fx.GetWidth())
			fmt.Printf("  Swap L/R: %v\n", fx.GetSwapLr())
			fmt.Printf("  Bass: %.1f dB\n", fx.GetBassDb())
			fmt.Printf("  Reverb mix: %.2f\n", fx.GetReverbMix())
			return nil
		},
	}
	cmd.Flags().Float64("pan", 0, "Stereo pan (-1 to 1)")
	cmd.Flags().Float64("width", 1, "Stereo width (0 to 3)")
	cmd.Flags().Bool("swap-lr", false, "Swap left and right channels")
	cmd.Flags().Float64("bass-db", 0, "Bass boost in dB (0 to 18)")
	cmd.Flags().Float64("reverb-mix", 0, "Reverb wet mix (0 to 1)")
	return cmd
}

// buildFxRequest turns the changed fx flags into a partial update request.
// The second return reports whether any effect flag was set at all.
func buildFxRequest(flags *pflag.FlagSet) (*v1.SetAudioFxRequest, bool) {
	req := &v1.SetAudioFxRequest{}
	changed := false

	if flags.Changed("pan") {
		v, _ := flags.GetFloat64("pan")
		req.SetPan = true
		req.Pan = v
		changed = true
	}
	if flags.Changed("width") {
		v, _ := flags.GetFloat64("width")
		req.SetWidth = true
		req.Width = v
		changed = true
	}
	if flags.Changed("swap-lr") {
		v, _ := flags.GetBool("swap-lr")
		req.SetSwapLr = true
		req.SwapLr = v
		changed = true
	}
	if flags.Changed("bass-db") {
		v, _ := flags.GetFloat64("bass-db")
		req.SetBassDb = true
		req.BassDb = v
		changed = true
	}
	if flags.Changed("reverb-mix") {
		v, _ := flags.GetFloat64("reverb-mix")
		req.SetReverbMix = true
		req.ReverbMix = v
		changed = true
	}

	return req, changed
}
